package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/token"
)

// Current schema version - increment when TokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores scanned token streams on disk, keyed by the sha256 of
// the normalized file content. A hit skips rescanning the file entirely.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is the serialized form of one token. Trivia is not cached:
// consumers of cached streams only need the significant tokens.
type CachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
	Int   int64
	Float float64
	Bool  bool
}

// TokenPayload is the on-disk record for one scanned file.
type TokenPayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16

	Path       string
	Tokens     []CachedToken
	ErrorCount int
}

// OpenTokenCache initializes and returns a token cache at the standard
// location ($XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache easy to inspect and wipe.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the cache.
func (c *TokenCache) Put(key [32]byte, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload. A missing entry or a schema
// mismatch is a miss, not an error.
func (c *TokenCache) Get(key [32]byte, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != tokenCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// tokensToPayload converts a scanned stream into its on-disk form.
func tokensToPayload(path string, tokens []token.Token, errorCount int) *TokenPayload {
	payload := &TokenPayload{
		Schema:     tokenCacheSchemaVersion,
		Path:       path,
		Tokens:     make([]CachedToken, len(tokens)),
		ErrorCount: errorCount,
	}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
			Int:   tok.Int,
			Float: tok.Float,
			Bool:  tok.Bool,
		}
	}
	return payload
}

// payloadToTokens restores a cached stream against the given file. Spans
// are rebound to the file's current ID; trivia is not restored.
func payloadToTokens(payload *TokenPayload, fileID source.FileID) []token.Token {
	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind:  token.Kind(ct.Kind),
			Span:  source.Span{File: fileID, Start: ct.Start, End: ct.End},
			Text:  ct.Text,
			Int:   ct.Int,
			Float: ct.Float,
			Bool:  ct.Bool,
		}
	}
	return tokens
}
