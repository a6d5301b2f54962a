package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/salgue441/logo-dialect-analyzer/internal/lexer"
)

// projectManifest is an optional logo.toml discovered upward from the
// working directory. It names the package and may tighten scanner limits.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Lexer   lexerConfig   `toml:"lexer"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type lexerConfig struct {
	MaxWord   int `toml:"max_word"`
	MaxNumber int `toml:"max_number"`
	MaxString int `toml:"max_string"`
}

func findLogoToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "logo.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest returns (nil, false, nil) when no logo.toml exists;
// the manifest is optional and its absence is never an error.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLogoToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Lexer.MaxWord < 0 || cfg.Lexer.MaxNumber < 0 || cfg.Lexer.MaxString < 0 {
		return projectConfig{}, fmt.Errorf("%s: [lexer] limits must be non-negative", path)
	}
	return cfg, nil
}

// manifestLimits resolves scanner limits for the given start directory.
// Zero values in the manifest (or no manifest at all) leave the defaults.
func manifestLimits(startDir string) (lexer.Limits, error) {
	manifest, ok, err := loadProjectManifest(startDir)
	if err != nil {
		return lexer.Limits{}, err
	}
	if !ok {
		return lexer.Limits{}, nil
	}
	return lexer.Limits{
		MaxWord:   manifest.Config.Lexer.MaxWord,
		MaxNumber: manifest.Config.Lexer.MaxNumber,
		MaxString: manifest.Config.Lexer.MaxString,
	}, nil
}
