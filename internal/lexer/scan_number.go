package lexer

import (
	"fmt"
	"strconv"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// scanNumber scans integer and decimal literals.
//
// Forms: 123, 123.456, .5 (leading-dot decimal). A dot not followed by a
// digit is NOT part of the number: the integer token ends before it and the
// dot is re-scanned on the next call, so "12.x" lexes as IntLit(12), Dot,
// Ident(x). The numeric payload is parsed into Int/Float so the text form
// round-trips.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// ".digits" form (callers check isNumberAfterDot first)
	if lx.cursor.Peek() == '.' {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emitNumber(start, kind)
	}

	// integer part
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fractional part only when a digit follows the dot
	if lx.isNumberAfterDot() {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.emitNumber(start, kind)
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if int(sp.Len()) > lx.opts.Limits.MaxNumber {
		lx.errLex(diag.LexNumberTooLong, sp,
			fmt.Sprintf("number literal exceeds maximum length of %d characters", lx.opts.Limits.MaxNumber))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	if kind == token.FloatLit {
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			lx.errLex(diag.LexBadNumber, sp, "malformed decimal literal "+strconv.Quote(text))
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: kind, Span: sp, Text: text, Float: val}
	}

	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// within the length guard the only failure mode is overflow
		lx.errLex(diag.LexBadNumber, sp, "integer literal out of range: "+text)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text, Int: val}
}
