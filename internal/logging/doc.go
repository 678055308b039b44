// Package logging assembles structured slog loggers and formatting helpers used
// across postrec.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so orchestrator code can automatically tag
// log lines with the run identifier and processing stage. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
