// Package diag defines the diagnostics model shared by the scanner and the
// presentation layer: stable codes, severities, immutable Diagnostic values,
// a bounded Bag collector, and the Reporter seam the lexer emits through.
package diag
