// Package logging assembles the structured slog loggers used across tidy.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so run code can tag every log line
// with the run's correlation ID. A no-op logger is provided for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so all components
// emit log data with the same shape.
package logging
