// Package logging builds the slog loggers used across vidcut.
//
// Two handler formats are supported: a compact console form for terminal
// use and JSON for machine consumption. Logs go to stderr so command output
// (dry-run plans, summaries) stays clean on stdout; an optional log
// directory adds a persistent file alongside.
package logging
