package testsupport

import (
	"path/filepath"
	"testing"

	"namesong/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithMaxInstructions overrides the trace instruction cap.
func WithMaxInstructions(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Trace.MaxInstructions = limit
	}
}

// WithLogFormat overrides the log output format.
func WithLogFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Format = format
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
