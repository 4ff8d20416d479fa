// Package render formats command output for the terminal.
//
// Output is plain text with optional ANSI styling; color is enabled only
// when stdout is a real terminal and the NO_COLOR convention is honored,
// so piped output stays clean.
package render
