// Package logging assembles the structured slog loggers used by the avmark
// CLI.
//
// It owns console and JSON handler construction, centralizes level parsing,
// and exposes standardized field keys plus a no-op logger for tests and
// wiring code that cannot fail. Prefer these constructors over hand-rolled
// slog setup so every command emits log lines with the same shape.
package logging
