package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"namesong/internal/runs"
)

func TestComposeNoSave(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"compose", "John", "--no-save"}, env.configPath)
	if err != nil {
		t.Fatalf("compose --no-save: %v", err)
	}
	requireContains(t, out, `Composed "John": 33 notes`)
	requireContains(t, out, "Name: John, Length: 4, Hash: 2089257364, Result: 2089257399")
	requireContains(t, out, "Tempo: 90 BPM")
	requireContains(t, out, "Key: ")
	requireContains(t, out, "First notes:")
	if strings.Contains(out, "Musical data saved to") {
		t.Fatal("--no-save still reported a saved file")
	}

	matches, err := filepath.Glob(filepath.Join(env.cfg.Paths.OutputDir, "musical_data_*.json"))
	if err != nil {
		t.Fatalf("glob output dir: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("--no-save wrote files: %v", matches)
	}
}

func TestComposeSavesAndRecords(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"compose", "John"}, env.configPath)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	requireContains(t, out, "Musical data saved to ")

	matches, err := filepath.Glob(filepath.Join(env.cfg.Paths.OutputDir, "musical_data_*.json"))
	if err != nil {
		t.Fatalf("glob output dir: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("musical data files = %v, want exactly one", matches)
	}

	store, err := runs.Open(env.cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	listed, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("runs recorded = %d, want 1", len(listed))
	}
	run := listed[0]
	if run.Name != "John" || run.Result != 2089257399 || run.NoteCount != 33 {
		t.Errorf("recorded run = %+v", run)
	}
	if run.ScorePath != matches[0] {
		t.Errorf("score path = %q, want %q", run.ScorePath, matches[0])
	}
}

func TestComposeJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"compose", "John", "--json", "--no-save"}, env.configPath)
	if err != nil {
		t.Fatalf("compose --json: %v", err)
	}

	var score struct {
		Notes   []string  `json:"notes"`
		Rhythms []float64 `json:"rhythms"`
		Tempo   int       `json:"tempo"`
	}
	if err := json.Unmarshal([]byte(out), &score); err != nil {
		t.Fatalf("parse score json: %v", err)
	}
	if len(score.Notes) != 33 || len(score.Rhythms) != 33 {
		t.Errorf("notes = %d rhythms = %d, want 33 each", len(score.Notes), len(score.Rhythms))
	}
	if score.Tempo != 90 {
		t.Errorf("tempo = %d, want 90", score.Tempo)
	}
}

func TestComposeFromTraceFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(t.TempDir(), "trace.json")

	if _, _, err := runCLI(t, []string{"trace", "Ada", "--output", path}, env.configPath); err != nil {
		t.Fatalf("trace --output: %v", err)
	}

	out, _, err := runCLI(t, []string{"compose", "--trace", path, "--no-save"}, env.configPath)
	if err != nil {
		t.Fatalf("compose --trace: %v", err)
	}
	requireContains(t, out, `Composed "Ada"`)
	requireContains(t, out, "Name: Ada, Length: 3, Hash: 193451179, Result: 193451247")
}

func TestComposeTraceRejectsNameArg(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"compose", "John", "--trace", "whatever.json"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("compose --trace with name arg: err = %v, want usage error", err)
	}
}
