package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "logo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"turtle-art\"\n\n[lexer]\nmax_word = 64\n")

	manifest, ok, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatalf("loadProjectManifest failed: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if manifest.Config.Package.Name != "turtle-art" {
		t.Errorf("expected package name turtle-art, got %q", manifest.Config.Package.Name)
	}
	if manifest.Config.Lexer.MaxWord != 64 {
		t.Errorf("expected max_word 64, got %d", manifest.Config.Lexer.MaxWord)
	}
	if manifest.Root != dir {
		t.Errorf("expected root %s, got %s", dir, manifest.Root)
	}
}

func TestLoadProjectManifestDiscoveredUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"nested\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := loadProjectManifest(nested)
	if err != nil || !ok {
		t.Fatalf("expected manifest found upward, got ok=%v err=%v", ok, err)
	}
	if manifest.Config.Package.Name != "nested" {
		t.Errorf("unexpected package name %q", manifest.Config.Package.Name)
	}
}

func TestLoadProjectManifestMissingIsNotError(t *testing.T) {
	manifest, ok, err := loadProjectManifest(t.TempDir())
	if err != nil {
		t.Fatalf("missing manifest must not error: %v", err)
	}
	if ok || manifest != nil {
		t.Fatal("expected no manifest")
	}
}

func TestLoadProjectManifestRequiresPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\n")

	_, ok, err := loadProjectManifest(dir)
	if !ok {
		t.Fatal("manifest file exists, ok should be true")
	}
	if err == nil {
		t.Fatal("expected error for missing [package].name")
	}
}

func TestManifestLimits(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"limits\"\n\n[lexer]\nmax_word = 10\nmax_string = 20\n")

	limits, err := manifestLimits(dir)
	if err != nil {
		t.Fatalf("manifestLimits failed: %v", err)
	}
	if limits.MaxWord != 10 || limits.MaxString != 20 {
		t.Errorf("unexpected limits %+v", limits)
	}
	// unset values stay zero so lexer defaults apply
	if limits.MaxNumber != 0 {
		t.Errorf("expected MaxNumber 0, got %d", limits.MaxNumber)
	}
}
