// Package config loads, normalizes, and validates namesong configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the NAMESONG_OUTPUT_DIR
// environment fallback. The Config type centralizes every knob the CLI
// needs: output locations, trace simulation limits, tempo tiers, and log
// routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
