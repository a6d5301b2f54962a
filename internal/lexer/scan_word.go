package lexer

import (
	"fmt"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// scanWord scans a maximal run of letters/digits/underscore and classifies
// it against the reserved-word table. Reserved words and their aliases come
// back as keyword kinds; everything else is an identifier with its lexeme
// preserved verbatim.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isWordContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if int(sp.Len()) > lx.opts.Limits.MaxWord {
		lx.errLex(diag.LexIdentTooLong, sp,
			fmt.Sprintf("identifier exceeds maximum length of %d characters", lx.opts.Limits.MaxWord))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
