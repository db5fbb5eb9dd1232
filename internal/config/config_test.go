package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Trace.MaxInstructions != 1000 {
		t.Errorf("MaxInstructions = %d, want 1000", cfg.Trace.MaxInstructions)
	}
	if cfg.Music.MediumTempo != 120 {
		t.Errorf("MediumTempo = %d, want 120", cfg.Music.MediumTempo)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, path, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Errorf("exists = true for missing file %s", path)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadOverrides(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := `
[paths]
output_dir = "` + filepath.Join(base, "out") + `"

[trace]
max_instructions = 64

[music]
slow_tempo = 60
medium_tempo = 110
fast_tempo = 180
default_key = "g"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists=%v", resolved, exists)
	}
	if cfg.Trace.MaxInstructions != 64 {
		t.Errorf("MaxInstructions = %d, want 64", cfg.Trace.MaxInstructions)
	}
	if cfg.Music.DefaultKey != "G" {
		t.Errorf("DefaultKey = %q, want G (normalized to upper case)", cfg.Music.DefaultKey)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad key",
			content: "[music]\ndefault_key = \"H\"\n",
			wantErr: "music.default_key",
		},
		{
			name:    "tempo order",
			content: "[music]\nslow_tempo = 200\nmedium_tempo = 120\n",
			wantErr: "tempos",
		},
		{
			name:    "negative instruction cap",
			content: "[trace]\nmax_instructions = -1\n",
			wantErr: "trace.max_instructions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestOutputDirEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv("NAMESONG_OUTPUT_DIR", override)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\noutput_dir = \"/elsewhere\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.OutputDir != override {
		t.Errorf("OutputDir = %q, want env override %q", cfg.Paths.OutputDir, override)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/songs")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "songs") {
		t.Errorf("ExpandPath(~/songs) = %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	if cfg.Trace.MaxInstructions != 1000 {
		t.Errorf("sample MaxInstructions = %d, want 1000", cfg.Trace.MaxInstructions)
	}
}
