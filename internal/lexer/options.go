package lexer

import (
	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
)

// Default lexeme length guards. They bound pathological inputs; real Logo
// programs never get near them.
const (
	DefaultMaxWordLen   = 255
	DefaultMaxNumberLen = 100
	DefaultMaxStringLen = 10000
)

// Limits configures the maximum lexeme lengths enforced by the scanner.
// Zero values fall back to the defaults.
type Limits struct {
	MaxWord   int
	MaxNumber int
	MaxString int
}

func (l Limits) withDefaults() Limits {
	if l.MaxWord <= 0 {
		l.MaxWord = DefaultMaxWordLen
	}
	if l.MaxNumber <= 0 {
		l.MaxNumber = DefaultMaxNumberLen
	}
	if l.MaxString <= 0 {
		l.MaxString = DefaultMaxStringLen
	}
	return l
}

// Options configures a Lexer. Reporter may be nil: errors are then dropped,
// but scanning still continues and Invalid tokens are still produced.
// Whether to stop at the first error is the caller's policy, not the
// scanner's.
type Options struct {
	Reporter diag.Reporter
	Limits   Limits
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
