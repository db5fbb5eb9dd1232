package main

import (
	"path/filepath"
	"strings"
	"testing"

	"namesong/internal/trace"
)

func TestTraceStdout(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"trace", "John"}, env.configPath)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	requireContains(t, out, `Instruction trace for "John"`)
	requireContains(t, out, "Step 0: 0x555555555000 - push %rbp")
	requireContains(t, out, "Name: John, Length: 4, Hash: 2089257364, Result: 2089257399")
	if strings.Contains(out, "Trace truncated") {
		t.Fatal("full trace reported as truncated")
	}
}

func TestTraceOutputFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(t.TempDir(), "trace.json")

	out, _, err := runCLI(t, []string{"trace", "John", "--output", path}, env.configPath)
	if err != nil {
		t.Fatalf("trace --output: %v", err)
	}
	requireContains(t, out, "Trace written to "+path)

	tr, err := trace.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace file: %v", err)
	}
	if len(tr.Instructions) != 33 {
		t.Errorf("instructions = %d, want 33", len(tr.Instructions))
	}
	if tr.Report.Result != 2089257399 {
		t.Errorf("result = %d, want 2089257399", tr.Report.Result)
	}
}

func TestTraceLimitTruncates(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"trace", "John", "--limit", "5"}, env.configPath)
	if err != nil {
		t.Fatalf("trace --limit: %v", err)
	}
	requireContains(t, out, "Trace truncated at instruction limit")
	if strings.Contains(out, "Step 5:") {
		t.Fatal("trace emitted steps beyond the limit")
	}
}

func TestTraceJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"trace", "Ada", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("trace --json: %v", err)
	}
	requireContains(t, out, `"total_instructions"`)
	requireContains(t, out, `"0x555555555000"`)
}

func TestTraceArgCount(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"trace"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("trace with no args: err = %v, want usage error", err)
	}
}
