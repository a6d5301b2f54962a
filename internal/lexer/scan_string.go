package lexer

import (
	"fmt"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// scanString scans a double-quoted string literal. Logo strings are single
// line and have no escape sequences; a newline or EOF before the closing
// quote is an error anchored at the opening quote. On success Token.Text
// holds the contents without the delimiting quotes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if int(sp.Len())-2 > lx.opts.Limits.MaxString {
				lx.errLex(diag.LexStringTooLong, sp,
					fmt.Sprintf("string literal exceeds maximum length of %d characters", lx.opts.Limits.MaxString))
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: string(lx.file.Content[sp.Start+1 : sp.End-1]),
			}
		}

		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal (newline before closing quote)")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
