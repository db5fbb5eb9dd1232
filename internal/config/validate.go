package config

import (
	"errors"
	"fmt"
)

var validKeys = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTrace(); err != nil {
		return err
	}
	if err := c.validateMusic(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTrace() error {
	if c.Trace.MaxInstructions < 0 {
		return errors.New("trace.max_instructions must not be negative")
	}
	return nil
}

func (c *Config) validateMusic() error {
	if c.Music.SlowTempo <= 0 || c.Music.MediumTempo <= 0 || c.Music.FastTempo <= 0 {
		return errors.New("music tempos must be positive")
	}
	if c.Music.SlowTempo > c.Music.MediumTempo || c.Music.MediumTempo > c.Music.FastTempo {
		return errors.New("music tempos must satisfy slow_tempo <= medium_tempo <= fast_tempo")
	}
	if !validKeys[c.Music.DefaultKey] {
		return fmt.Errorf("music.default_key must be one of A-G, got %q", c.Music.DefaultKey)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
