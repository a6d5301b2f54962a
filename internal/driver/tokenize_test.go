package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

func writeTempLogo(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeFromDisk(t *testing.T) {
	path := writeTempLogo(t, "square.logo", "WHILE [i < 4] [ FD 50 RT 90 ]\n")

	res, err := Tokenize(path, Options{})
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if got := res.Tokens[len(res.Tokens)-1].Kind; got != token.EOF {
		t.Fatalf("stream must end with EOF, got %v", got)
	}
	if res.Tokens[0].Kind != token.KwWhile {
		t.Errorf("expected KwWhile first, got %v", res.Tokens[0].Kind)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "missing.logo"), Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.logo") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestTokenizeSourceCollectsAllErrors(t *testing.T) {
	res := TokenizeSource("bad.logo", []byte("FD $ BK & RT 90"), Options{})

	if res.Bag.ErrorCount() != 2 {
		t.Fatalf("expected 2 errors collected, got %d: %v",
			res.Bag.ErrorCount(), res.Bag.Items())
	}
	// Scanning continued past both bad characters.
	last := res.Tokens[len(res.Tokens)-2]
	if last.Kind != token.IntLit || last.Int != 90 {
		t.Errorf("expected trailing IntLit(90), got %v(%q)", last.Kind, last.Text)
	}
}

func TestTokenizeStrictStopsAtFirstError(t *testing.T) {
	path := writeTempLogo(t, "bad.logo", "FD 10\nBK $ RT 90\n")

	res, err := TokenizeStrict(path, Options{})
	if err == nil {
		t.Fatal("expected error from strict mode")
	}
	if !strings.Contains(err.Error(), "2:4") {
		t.Errorf("error should carry line:col of the offense, got %v", err)
	}
	if !strings.Contains(err.Error(), "LEX1001") {
		t.Errorf("error should carry the code, got %v", err)
	}

	// The stream stops at the offending token; RT was never scanned.
	for _, tok := range res.Tokens {
		if tok.Kind == token.KwRight {
			t.Error("strict mode should not scan past the first error")
		}
	}
}

func TestTokenizeStrictCleanFile(t *testing.T) {
	path := writeTempLogo(t, "ok.logo", "HOME CLS PD\n")

	res, err := TokenizeStrict(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.KwHome, token.KwClear, token.KwPenDown, token.EOF}
	got := kinds(res.Tokens)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTokenizeHonorsMaxDiagnostics(t *testing.T) {
	res := TokenizeSource("noisy.logo", []byte("$ $ $ $ $ $"), Options{MaxDiagnostics: 3})
	if res.Bag.Len() != 3 {
		t.Fatalf("expected bag capped at 3, got %d", res.Bag.Len())
	}
}
