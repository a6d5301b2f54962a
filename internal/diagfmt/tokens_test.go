package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/salgue441/logo-dialect-analyzer/internal/lexer"
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

func scanAll(t *testing.T, input string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tokens.logo", []byte(input))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, fs
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := scanAll(t, "FD 3.14")

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty failed: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "KwForward") {
		t.Errorf("expected KwForward in output:\n%s", out)
	}
	if !strings.Contains(out, `"3.14" = 3.14`) {
		t.Errorf("expected float payload next to lexeme:\n%s", out)
	}
	if !strings.Contains(out, "at 1:1-1:3") {
		t.Errorf("expected span positions:\n%s", out)
	}
	if !strings.Contains(out, "leading: Space") {
		t.Errorf("expected leading trivia listing:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, fs := scanAll(t, "VAR x\nx := 10")

	var sb strings.Builder
	if err := FormatTokensJSON(&sb, tokens, fs); err != nil {
		t.Fatalf("FormatTokensJSON failed: %v", err)
	}

	var out []TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	kinds := make([]string, len(out))
	for i, to := range out {
		kinds[i] = to.Kind
	}
	want := []string{"KwVar", "Ident", "Ident", "Assign", "IntLit", "EOF"}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}

	last := out[4]
	if last.StartLine != 2 || last.StartCol != 6 {
		t.Errorf("expected IntLit at 2:6, got %d:%d", last.StartLine, last.StartCol)
	}
	if v, ok := last.Value.(float64); !ok || v != 10 {
		t.Errorf("expected value 10, got %v", last.Value)
	}
}
