package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTrace()
	c.normalizeMusic()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("NAMESONG_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = value
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}

	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTrace() {
	if c.Trace.MaxInstructions == 0 {
		c.Trace.MaxInstructions = defaultMaxInstructions
	}
	if c.Trace.BaseAddress == 0 {
		c.Trace.BaseAddress = defaultBaseAddress
	}
}

func (c *Config) normalizeMusic() {
	if c.Music.SlowTempo == 0 {
		c.Music.SlowTempo = defaultSlowTempo
	}
	if c.Music.MediumTempo == 0 {
		c.Music.MediumTempo = defaultMediumTempo
	}
	if c.Music.FastTempo == 0 {
		c.Music.FastTempo = defaultFastTempo
	}
	c.Music.DefaultKey = strings.ToUpper(strings.TrimSpace(c.Music.DefaultKey))
	if c.Music.DefaultKey == "" {
		c.Music.DefaultKey = defaultKey
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
