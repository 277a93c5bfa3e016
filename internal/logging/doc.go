// Package logging assembles the structured slog loggers used across
// Winnow commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tees command output into timestamped log files under the
// configured log directory. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits data with the same shape.
package logging
