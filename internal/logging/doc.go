// Package logging assembles the structured slog loggers used by wordbag.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes helpers that tag log lines with a component name and the run
// identifier carried in a context. A no-op logger is provided for tests and
// for library callers that do not want output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same field names (component, run_id, period, event_type,
// error_hint, impact).
package logging
