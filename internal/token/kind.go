package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwVar represents the 'VAR' keyword.
	KwVar
	// KwForward represents the 'FORWARD' movement command (aliases FD, FWD).
	KwForward
	// KwBackward represents the 'BACKWARD' movement command (alias BK).
	KwBackward
	// KwRight represents the 'RIGHT' movement command (alias RT).
	KwRight
	// KwLeft represents the 'LEFT' movement command (alias LT).
	KwLeft
	// KwSetX represents the 'SETX' command.
	KwSetX
	// KwSetY represents the 'SETY' command.
	KwSetY
	// KwSetXY represents the 'SETXY' command.
	KwSetXY
	// KwHome represents the 'HOME' command.
	KwHome
	// KwClear represents the 'CLEAR' command (alias CLS).
	KwClear
	// KwCircle represents the 'CIRCLE' command.
	KwCircle
	// KwArc represents the 'ARC' command.
	KwArc
	// KwPenUp represents the 'PENUP' command (alias PU).
	KwPenUp
	// KwPenDown represents the 'PENDOWN' command (alias PD).
	KwPenDown
	// KwColor represents the 'COLOR' command.
	KwColor
	// KwPenWidth represents the 'PENWIDTH' command.
	KwPenWidth
	// KwPrint represents the 'PRINT' command.
	KwPrint
	// KwWhile represents the 'WHILE' control keyword.
	KwWhile
	// KwIf represents the 'IF' control keyword.
	KwIf
	// KwIfElse represents the 'IFELSE' control keyword.
	KwIfElse
	// KwAnd represents the 'AND' operator keyword.
	KwAnd
	// KwOr represents the 'OR' operator keyword.
	KwOr
	// KwMod represents the 'MOD' operator keyword.
	KwMod

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a decimal literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// BoolLit represents a boolean literal (#t / #f).
	BoolLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Eq represents the equality operator token.
	Eq // =
	// NotEq represents the not-equal operator token.
	NotEq // <>
	// Assign represents the assignment operator token.
	Assign // :=
	// Colon represents a bare colon token.
	Colon // :
	// Dot represents a bare dot token.
	Dot // .
	// Comma represents the comma token.
	Comma // ,
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]

	kindCount // sentinel, keep last
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwVar:      "KwVar",
	KwForward:  "KwForward",
	KwBackward: "KwBackward",
	KwRight:    "KwRight",
	KwLeft:     "KwLeft",
	KwSetX:     "KwSetX",
	KwSetY:     "KwSetY",
	KwSetXY:    "KwSetXY",
	KwHome:     "KwHome",
	KwClear:    "KwClear",
	KwCircle:   "KwCircle",
	KwArc:      "KwArc",
	KwPenUp:    "KwPenUp",
	KwPenDown:  "KwPenDown",
	KwColor:    "KwColor",
	KwPenWidth: "KwPenWidth",
	KwPrint:    "KwPrint",
	KwWhile:    "KwWhile",
	KwIf:       "KwIf",
	KwIfElse:   "KwIfElse",
	KwAnd:      "KwAnd",
	KwOr:       "KwOr",
	KwMod:      "KwMod",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	BoolLit:    "BoolLit",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	Eq:         "Eq",
	NotEq:      "NotEq",
	Assign:     "Assign",
	Colon:      "Colon",
	Dot:        "Dot",
	Comma:      "Comma",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
