package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// TokenOutput is the JSON shape of one scanned token.
type TokenOutput struct {
	Kind      string      `json:"kind"`
	Text      string      `json:"text,omitempty"`
	Span      source.Span `json:"span"`
	StartLine uint32      `json:"start_line"`
	StartCol  uint32      `json:"start_col"`
	Value     any         `json:"value,omitempty"`
	Leading   []string    `json:"leading,omitempty"`
}

// FormatTokensPretty writes one line per token:
//
//	  1: KwForward      "FD" at 1:1-1:3
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if v := payload(tok); v != nil {
			fmt.Fprintf(w, " = %v", v)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		startPos, _ := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Span:      tok.Span,
			StartLine: startPos.Line,
			StartCol:  startPos.Col,
			Value:     payload(tok),
			Leading:   leading,
		})

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// payload returns the decoded literal value, or nil for non-literals.
func payload(tok token.Token) any {
	switch tok.Kind {
	case token.IntLit:
		return tok.Int
	case token.FloatLit:
		return tok.Float
	case token.BoolLit:
		return tok.Bool
	default:
		return nil
	}
}
