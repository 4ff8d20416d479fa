// Package logging configures the process-wide slog logger from the
// airgauge logging configuration: level and output format (text for
// interactive use, JSON for the collector daemon).
package logging
