package driver

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"

	"javalex/internal/diag"
	"javalex/internal/diagfmt"
	"javalex/internal/source"
)

// Current schema version - increment when CachedTokens or the lexer output changes
const tokenCacheSchemaVersion uint16 = 2

// Digest — ключ кэша: blake2b-256 от версии схемы и содержимого файла.
type Digest [blake2b.Size256]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// CacheKey derives the cache key of already decoded file content.
func CacheKey(content []byte) Digest {
	var version [2]byte
	binary.BigEndian.PutUint16(version[:], tokenCacheSchemaVersion)
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Errorf("blake2b.New256 failed: %w", err))
	}
	h.Write(version[:])
	h.Write(content)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// CachedDiagnostic — диагностика без FileID: при чтении привязывается к новому файлу.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// CachedTokens is the on-disk payload for one file.
type CachedTokens struct {
	Schema      uint16
	Tokens      []diagfmt.TokenRecord
	Diagnostics []CachedDiagnostic
}

// TokenCache хранит результаты лексера по хэшу содержимого.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenTokenCache opens (and creates) a cache rooted at dir.
func OpenTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/app or ~/.cache/app.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key Digest) string {
	hexKey := key.String()
	// Подкаталог по первому байту, чтобы не держать тысячи файлов в одном каталоге.
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the cache.
func (c *TokenCache) Put(key Digest, payload *CachedTokens) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if removeErr := os.Remove(f.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) && err == nil {
			err = removeErr
		}
	}()

	payload.Schema = tokenCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A miss, or a payload of another schema, is (false, nil).
func (c *TokenCache) Get(key Digest, out *CachedTokens) (bool, error) {
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

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != tokenCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// CacheStats summarizes what a TokenCache holds on disk.
type CacheStats struct {
	Entries int
	Bytes   int64
}

// Stats counts cache entries. A cache directory without entries is empty,
// not an error.
func (c *TokenCache) Stats() (CacheStats, error) {
	var st CacheStats
	if c == nil {
		return st, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	root := filepath.Join(c.dir, "tokens")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".mp" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		st.Entries++
		st.Bytes += info.Size()
		return nil
	})
	return st, err
}

// cachedDiagnostics keeps only what the lexer reported: cache warnings belong to this run.
func cachedDiagnostics(items []diag.Diagnostic) []CachedDiagnostic {
	out := make([]CachedDiagnostic, 0, len(items))
	for _, d := range items {
		if d.Code == diag.IOCacheError {
			continue
		}
		out = append(out, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return out
}

// replay повторяет сохранённые диагностики через reporter, привязывая их к file.
func replay(reporter diag.Reporter, file source.FileID, items []CachedDiagnostic) {
	for _, d := range items {
		sp := source.Span{File: file, Start: d.Start, End: d.End}
		diag.NewReportBuilder(reporter, diag.Severity(d.Severity), diag.Code(d.Code), sp, d.Message).Emit()
	}
}
