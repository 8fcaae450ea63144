package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pyapi/internal/diag"
)

// Bump when the payload format or the extraction semantics keyed into
// the cache change.
const cacheSchemaVersion uint16 = 1

// DiskCache stores rendered extraction results keyed by file content and
// options. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the serialized per-file result.
type cachePayload struct {
	Schema      uint16
	Definitions []string
}

// OpenDiskCache initializes the cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
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
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory. Used by
// tests and by configs that relocate the cache.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey hashes the raw file bytes together with every option that
// changes the rendered output.
func cacheKey(content []byte, opts Options) [sha256.Size]byte {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "|v%d|%s|docstrings=%t", cacheSchemaVersion, opts.Visibility, opts.Docstrings)
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *DiskCache) pathFor(key [sha256.Size]byte) string {
	return filepath.Join(c.dir, "results", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, atomically via temp file + rename.
func (c *DiskCache) Put(key [sha256.Size]byte, payload *cachePayload) error {
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

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; ok is false on a miss.
func (c *DiskCache) Get(key [sha256.Size]byte, out *cachePayload) (bool, error) {
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
	return true, nil
}

// DropAll removes every cached result: rename the directory away, then
// delete it, so concurrent readers never see a half-empty cache.
func (c *DiskCache) DropAll() error {
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
	return os.RemoveAll(old)
}

// lookupFile returns a cached result for the file's current content.
// Diagnostics are not cached; hits come back with an empty bag.
func (c *DiskCache) lookupFile(path string, opts Options) (*FileResult, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	var payload cachePayload
	ok, err := c.Get(cacheKey(content, opts), &payload)
	if err != nil || !ok {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &FileResult{
		Path:        path,
		Definitions: payload.Definitions,
		Bag:         diag.NewBag(opts.MaxDiagnostics),
	}, true, nil
}

// storeFile writes a freshly computed result. The key is rehashed from
// the raw bytes so it matches what lookupFile computes.
func (c *DiskCache) storeFile(path string, opts Options, res *FileResult) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.Put(cacheKey(content, opts), &cachePayload{
		Schema:      cacheSchemaVersion,
		Definitions: res.Definitions,
	})
}
