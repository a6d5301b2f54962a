package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

func writeDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dir
}

func TestTokenizeDirDeterministicOrder(t *testing.T) {
	dir := writeDir(t, map[string]string{
		"c.logo":        "FD 1",
		"a.logo":        "FD 2",
		"nested/b.logo": "FD 3",
		"skip.txt":      "not logo",
	})

	fs, results, err := TokenizeDir(context.Background(), dir, DirOptions{Jobs: 4})
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}
	if fs == nil {
		t.Fatal("expected a FileSet")
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Sorted path order, independent of goroutine scheduling.
	want := []string{
		filepath.Join(dir, "a.logo"),
		filepath.Join(dir, "c.logo"),
		filepath.Join(dir, "nested", "b.logo"),
	}
	for i, res := range results {
		if res.Path != want[i] {
			t.Errorf("result %d: expected %s, got %s", i, want[i], res.Path)
		}
		if res.Bag.HasErrors() {
			t.Errorf("result %d: unexpected errors %v", i, res.Bag.Items())
		}
		if len(res.Tokens) != 3 { // FD, number, EOF
			t.Errorf("result %d: expected 3 tokens, got %d", i, len(res.Tokens))
		}
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), DirOptions{})
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}
	if fs == nil || len(results) != 0 {
		t.Fatalf("expected empty result set, got %d", len(results))
	}
}

func TestTokenizeDirCollectsPerFileErrors(t *testing.T) {
	dir := writeDir(t, map[string]string{
		"good.logo": "HOME",
		"bad.logo":  "FD $",
	})

	_, results, err := TokenizeDir(context.Background(), dir, DirOptions{})
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}

	// bad.logo sorts first
	if !results[0].Bag.HasErrors() {
		t.Error("expected errors for bad.logo")
	}
	if results[1].Bag.HasErrors() {
		t.Errorf("expected clean scan for good.logo, got %v", results[1].Bag.Items())
	}
}

func TestTokenizeDirEventsAndCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenTokenCache("logo-test")
	if err != nil {
		t.Fatalf("OpenTokenCache failed: %v", err)
	}

	dir := writeDir(t, map[string]string{
		"one.logo": "FD 10 RT 90",
		"two.logo": "BK $",
	})

	events := make(chan Event, 16)
	_, results, err := TokenizeDir(context.Background(), dir, DirOptions{Cache: cache, Events: events})
	if err != nil {
		t.Fatalf("TokenizeDir failed: %v", err)
	}

	var done, failed int
	for ev := range events {
		switch ev.Status {
		case StatusDone:
			done++
		case StatusError:
			failed++
		}
	}
	if done != 1 || failed != 1 {
		t.Errorf("expected 1 done + 1 error event, got %d/%d", done, failed)
	}

	for _, res := range results {
		if res.CacheHit {
			t.Errorf("first run must not hit the cache: %s", res.Path)
		}
	}

	// Second run: the clean file comes from cache, the erroring one rescans.
	_, results, err = TokenizeDir(context.Background(), dir, DirOptions{Cache: cache})
	if err != nil {
		t.Fatalf("second TokenizeDir failed: %v", err)
	}
	if !results[0].CacheHit {
		t.Error("expected cache hit for one.logo")
	}
	if results[1].CacheHit {
		t.Error("erroring file must never be served from cache")
	}
	if !results[1].Bag.HasErrors() {
		t.Error("rescan must regenerate diagnostics")
	}

	// Cached stream matches a fresh scan.
	if len(results[0].Tokens) != 5 { // FD 10 RT 90 EOF
		t.Errorf("expected 5 cached tokens, got %d", len(results[0].Tokens))
	}
	if results[0].Tokens[1].Kind != token.IntLit || results[0].Tokens[1].Int != 10 {
		t.Errorf("cached payload lost: %+v", results[0].Tokens[1])
	}
}
