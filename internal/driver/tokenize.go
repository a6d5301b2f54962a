package driver

import (
	"fmt"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/lexer"
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// Options configures a single-file tokenize run.
type Options struct {
	MaxDiagnostics int
	Limits         lexer.Limits
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 64
	}
	return o
}

// TokenizeResult carries everything a caller needs after scanning one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it to EOF, collecting every
// diagnostic up to the bag limit. I/O failures surface as the returned
// error before any scanning happens.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	opts = opts.withDefaults()

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return scanFile(fs, fileID, opts), nil
}

// TokenizeSource scans in-memory content under the given display name.
func TokenizeSource(name string, content []byte, opts Options) *TokenizeResult {
	opts = opts.withDefaults()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return scanFile(fs, fileID, opts)
}

// TokenizeStrict is the fail-fast mode: scanning stops at the first error
// diagnostic and it comes back as a Go error with position context. The
// partial result (tokens scanned so far) is still returned.
func TokenizeStrict(path string, opts Options) (*TokenizeResult, error) {
	opts = opts.withDefaults()

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Limits:   opts.Limits,
	})

	result := &TokenizeResult{FileSet: fs, File: file, Bag: bag}
	for {
		tok := lx.Next()
		result.Tokens = append(result.Tokens, tok)

		if first, ok := bag.FirstError(); ok {
			pos := file.Pos(first.Primary.Start)
			return result, fmt.Errorf("%s:%d:%d: %s: %s",
				file.Path, pos.Line, pos.Col, first.Code.ID(), first.Message)
		}
		if tok.Kind == token.EOF {
			return result, nil
		}
	}
}

func scanFile(fs *source.FileSet, fileID source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Limits:   opts.Limits,
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
