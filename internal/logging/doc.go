// Package logging assembles the structured slog loggers used across
// namesong commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that
// cannot fail. Log output is routed to stderr and the configured log file;
// stdout stays reserved for the diagnostic lines downstream tooling parses.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits data with the same shape.
package logging
