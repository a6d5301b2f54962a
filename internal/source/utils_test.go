package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		out     string
		changed bool
	}{
		{"", "", false},
		{"plain\n", "plain\n", false},
		{"a\r\nb", "a\nb", true},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"lone\rcr", "lone\rcr", false},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.out || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q, %v; want %q, %v",
				tt.in, got, changed, tt.out, tt.changed)
		}
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("expected BOM stripped, got %q (had=%v)", got, had)
	}

	got, had = removeBOM([]byte("hi"))
	if had || string(got) != "hi" {
		t.Errorf("expected no BOM, got %q (had=%v)", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	// "VAR x\nx := 3\n" -> newlines at 5 and 12
	content := []byte("VAR x\nx := 3\n")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},  // V
		{4, LineCol{Line: 1, Col: 5}},  // x
		{5, LineCol{Line: 1, Col: 6}},  // \n belongs to line 1
		{6, LineCol{Line: 2, Col: 1}},  // x
		{8, LineCol{Line: 2, Col: 3}},  // =
		{12, LineCol{Line: 2, Col: 7}}, // trailing \n
		{13, LineCol{Line: 3, Col: 1}}, // EOF position
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	if got := toLineCol(nil, 7); got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("expected 1:8, got %+v", got)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "file.logo")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "file.logo")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "file.logo"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}
