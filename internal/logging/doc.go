// Package logging builds the slog loggers used across frid.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for log files or machine ingestion. Helper constructors wrap
// slog attribute creation so call sites stay terse, and every component logs
// through a logger tagged with its component name.
package logging
