package token

import (
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
)

// Token represents a single classified lexical unit with its location,
// payload, and leading trivia. Tokens are immutable once built and carry no
// reference back to the scanner that produced them.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Int     int64   // valid iff Kind == IntLit
	Float   float64 // valid iff Kind == FloatLit
	Bool    bool    // valid iff Kind == BoolLit
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, BoolLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Lt, LtEq, Gt, GtEq, Eq, NotEq,
		Assign, Colon, Dot, Comma, LParen, RParen, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word of the dialect.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVar, KwForward, KwBackward, KwRight, KwLeft, KwSetX, KwSetY,
		KwSetXY, KwHome, KwClear, KwCircle, KwArc, KwPenUp, KwPenDown,
		KwColor, KwPenWidth, KwPrint, KwWhile, KwIf, KwIfElse,
		KwAnd, KwOr, KwMod:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
