package lexer

import (
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// Lexer converts one Logo source file into an ordered stream of tokens.
// One Lexer owns its cursor exclusively; drive it from a single goroutine.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // leading trivia accumulated for the next token
	last   source.Span    // span of the most recently returned token
}

// New creates a Lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	opts.Limits = opts.Limits.withDefaults()
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// Lexical errors go to the Reporter and come back as Invalid tokens; Next
// keeps scanning afterwards. After the first EOF every further call returns
// EOF again without advancing.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.last = tok.Span
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
		// EOF drops accumulated trivia instead of gluing it on.
		lx.hold = nil
		lx.last = tok.Span
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isWordStart(ch):
		tok = lx.scanWord()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '#':
		tok = lx.scanBool()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	lx.last = tok.Span
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// LastSpan returns the span of the most recently returned token.
func (lx *Lexer) LastSpan() source.Span {
	return lx.last
}

// LastPos returns the line/column of the most recently returned token's
// first character. This is the caller-diagnostic position, not the internal
// lookahead position.
func (lx *Lexer) LastPos() source.LineCol {
	return lx.file.Pos(lx.last.Start)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
