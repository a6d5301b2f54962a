package lexer

import (
	"strconv"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation. Two-byte operators
// are tried before their one-byte prefixes so "<=" never lexes as Lt, Eq.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('<', '>'):
		return emit(token.NotEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2(':', '='):
		return emit(token.Assign)
	}

	b := lx.cursor.Bump()
	switch b {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '=':
		return emit(token.Eq)
	case ':':
		return emit(token.Colon)
	case '.':
		return emit(token.Dot)
	case ',':
		return emit(token.Comma)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character "+strconv.QuoteRune(rune(b)))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
