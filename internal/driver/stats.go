package driver

import (
	"fmt"
	"time"

	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// ScanStats summarizes one scan for reporting. Purely observational: it is
// computed from the finished token stream, never inside the scanner.
type ScanStats struct {
	Tokens      int     `json:"tokens"` // significant tokens, EOF excluded
	Keywords    int     `json:"keywords"`
	Identifiers int     `json:"identifiers"`
	Numbers     int     `json:"numbers"`
	Strings     int     `json:"strings"`
	Booleans    int     `json:"booleans"`
	Operators   int     `json:"operators"`
	Invalid     int     `json:"invalid"`
	Errors      int     `json:"errors"`
	Lines       int     `json:"lines"`
	Bytes       int     `json:"bytes"`
	DurationMS  float64 `json:"duration_ms"`
	TokensPerMS float64 `json:"tokens_per_ms,omitempty"`
}

// ComputeStats derives scan statistics from a tokenize result.
func ComputeStats(res *TokenizeResult, dur time.Duration) ScanStats {
	stats := ScanStats{
		Errors:     res.Bag.ErrorCount(),
		Bytes:      len(res.File.Content),
		Lines:      len(res.File.LineIdx) + 1,
		DurationMS: float64(dur) / float64(time.Millisecond),
	}
	if len(res.File.Content) == 0 {
		stats.Lines = 0
	}

	for _, tok := range res.Tokens {
		switch {
		case tok.Kind == token.EOF:
			continue
		case tok.Kind == token.Invalid:
			stats.Invalid++
		case tok.IsKeyword():
			stats.Keywords++
		case tok.Kind == token.Ident:
			stats.Identifiers++
		case tok.Kind == token.IntLit || tok.Kind == token.FloatLit:
			stats.Numbers++
		case tok.Kind == token.StringLit:
			stats.Strings++
		case tok.Kind == token.BoolLit:
			stats.Booleans++
		case tok.IsPunctOrOp():
			stats.Operators++
		}
		stats.Tokens++
	}

	if stats.DurationMS > 0 {
		stats.TokensPerMS = float64(stats.Tokens) / stats.DurationMS
	}
	return stats
}

// Summary renders the stats as a short human-readable block.
func (s ScanStats) Summary() string {
	return fmt.Sprintf(
		"tokens: %d (keywords %d, idents %d, numbers %d, strings %d, booleans %d, operators %d, invalid %d)\n"+
			"errors: %d\nsource: %d lines, %d bytes\nscan:   %.2f ms\n",
		s.Tokens, s.Keywords, s.Identifiers, s.Numbers, s.Strings, s.Booleans, s.Operators, s.Invalid,
		s.Errors, s.Lines, s.Bytes, s.DurationMS)
}
