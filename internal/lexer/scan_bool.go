package lexer

import (
	"strconv"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// scanBool scans the boolean literals #t and #f. The letter is matched
// case-insensitively; any other byte (or EOF) after '#' is an error anchored
// at the hash.
func (lx *Lexer) scanBool() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	b := lx.cursor.Peek()
	switch b {
	case 't', 'T':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.BoolLit, Span: sp, Text: lx.text(sp), Bool: true}
	case 'f', 'F':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.BoolLit, Span: sp, Text: lx.text(sp), Bool: false}
	}

	sp := lx.cursor.SpanFrom(start)
	if lx.cursor.EOF() {
		lx.errLex(diag.LexBadBool, sp, "expected 't' or 'f' after '#', found end of input")
	} else {
		lx.errLex(diag.LexBadBool, sp, "expected 't' or 'f' after '#', found "+strconv.QuoteRune(rune(b)))
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
