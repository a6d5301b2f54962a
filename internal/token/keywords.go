package token

import "strings"

// keywords maps canonical uppercase spellings and their declared aliases to
// keyword kinds. The table is built once and never mutated; concurrent
// lookups from independent scanners are safe.
var keywords = map[string]Kind{
	"VAR": KwVar,

	// movement commands with short aliases
	"FORWARD":  KwForward,
	"FD":       KwForward,
	"FWD":      KwForward,
	"BACKWARD": KwBackward,
	"BK":       KwBackward,
	"RIGHT":    KwRight,
	"RT":       KwRight,
	"LEFT":     KwLeft,
	"LT":       KwLeft,

	// pen position
	"SETX":  KwSetX,
	"SETY":  KwSetY,
	"SETXY": KwSetXY,
	"HOME":  KwHome,

	// drawing
	"CLEAR":    KwClear,
	"CLS":      KwClear,
	"CIRCLE":   KwCircle,
	"ARC":      KwArc,
	"PENUP":    KwPenUp,
	"PU":       KwPenUp,
	"PENDOWN":  KwPenDown,
	"PD":       KwPenDown,
	"COLOR":    KwColor,
	"PENWIDTH": KwPenWidth,

	// text and control flow
	"PRINT":  KwPrint,
	"WHILE":  KwWhile,
	"IF":     KwIf,
	"IFELSE": KwIfElse,

	// word operators
	"AND": KwAnd,
	"OR":  KwOr,
	"MOD": KwMod,
}

// canonical maps each keyword kind back to its canonical spelling, so FD and
// FWD both display as FORWARD.
var canonical = map[Kind]string{
	KwVar:      "VAR",
	KwForward:  "FORWARD",
	KwBackward: "BACKWARD",
	KwRight:    "RIGHT",
	KwLeft:     "LEFT",
	KwSetX:     "SETX",
	KwSetY:     "SETY",
	KwSetXY:    "SETXY",
	KwHome:     "HOME",
	KwClear:    "CLEAR",
	KwCircle:   "CIRCLE",
	KwArc:      "ARC",
	KwPenUp:    "PENUP",
	KwPenDown:  "PENDOWN",
	KwColor:    "COLOR",
	KwPenWidth: "PENWIDTH",
	KwPrint:    "PRINT",
	KwWhile:    "WHILE",
	KwIf:       "IF",
	KwIfElse:   "IFELSE",
	KwAnd:      "AND",
	KwOr:       "OR",
	KwMod:      "MOD",
}

// LookupKeyword classifies a word against the reserved-word table.
// Matching is case-insensitive; FORWARD, forward, and Fd all resolve to
// KwForward. Non-matches are identifiers.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(word)]
	return k, ok
}

// CanonicalSpelling returns the canonical uppercase spelling of a keyword
// kind ("" for non-keywords).
func CanonicalSpelling(k Kind) string {
	return canonical[k]
}
