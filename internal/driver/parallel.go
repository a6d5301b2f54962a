package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/salgue441/logo-dialect-analyzer/internal/diag"
	"github.com/salgue441/logo-dialect-analyzer/internal/lexer"
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// Status of one file inside a directory scan.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports per-file progress during TokenizeDir.
type Event struct {
	File   string
	Status Status
}

// DirOptions configures a directory scan.
type DirOptions struct {
	Options
	// Jobs bounds worker parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, skips rescanning files whose content hash has a
	// clean cached token stream.
	Cache *TokenCache
	// Events, when non-nil, receives per-file progress. TokenizeDir closes
	// it before returning.
	Events chan<- Event
}

// TokenizeDirResult holds the scan outcome for one file.
type TokenizeDirResult struct {
	Path     string        // path as discovered on disk
	FileID   source.FileID // ID in the shared FileSet (0 when the load failed)
	Tokens   []token.Token
	Bag      *diag.Bag
	CacheHit bool
}

// ListLogoFiles returns a sorted list of all *.logo files under dir.
func ListLogoFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".logo") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order
	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every *.logo file under dir in parallel. Result order
// matches the sorted file list regardless of worker scheduling. Files that
// fail to load come back with an IOFileUnavailable diagnostic instead of
// aborting the whole run.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	opts.Options = opts.Options.withDefaults()
	if opts.Events != nil {
		defer close(opts.Events)
	}

	files, err := ListLogoFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// FileSet mutation is not goroutine-safe: preload everything up front,
	// workers only read.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker writes only its own index, no mutex needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Events, Event{File: path, Status: StatusWorking})

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOFileUnavailable,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				emit(opts.Events, Event{File: path, Status: StatusError})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if tokens, ok := cacheLookup(opts.Cache, file, fileID); ok {
				results[i] = TokenizeDirResult{
					Path:     path,
					FileID:   fileID,
					Tokens:   tokens,
					Bag:      bag,
					CacheHit: true,
				}
				emit(opts.Events, Event{File: path, Status: StatusDone})
				return nil
			}

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

			cacheStore(opts.Cache, file, path, tokens, bag.ErrorCount())

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}

			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Events, Event{File: path, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}

// cacheLookup returns the cached token stream when the file content hash
// has a clean entry. Streams that carried errors are never served from
// cache: diagnostics cannot be reconstructed, so those files rescan.
func cacheLookup(cache *TokenCache, file *source.File, fileID source.FileID) ([]token.Token, bool) {
	if cache == nil {
		return nil, false
	}
	var payload TokenPayload
	hit, err := cache.Get(file.Hash, &payload)
	if err != nil || !hit || payload.ErrorCount > 0 {
		return nil, false
	}
	return payloadToTokens(&payload, fileID), true
}

func cacheStore(cache *TokenCache, file *source.File, path string, tokens []token.Token, errorCount int) {
	if cache == nil || errorCount > 0 {
		return
	}
	// A failed write only costs the next run a rescan.
	_ = cache.Put(file.Hash, tokensToPayload(path, tokens, errorCount))
}
