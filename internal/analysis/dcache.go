package analysis

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"shaderlint/internal/diag"
)

// cacheSchemaVersion invalidates every stored payload when the payload
// layout or the rule set changes shape.
const cacheSchemaVersion uint16 = 1

// DiskCache stores per-file analysis results keyed by content hash, so
// unchanged files skip re-analysis across runs. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the serialized result for one file. Config is the
// fingerprint of the lint configuration that produced the result;
// payloads from a different configuration are misses.
type CachePayload struct {
	Schema      uint16
	Config      string
	Path        string
	Diagnostics []diag.Diagnostic
}

// OpenDiskCache initializes the cache under the XDG cache directory.
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

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "results", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload and writes it atomically.
func (c *DiskCache) Put(key [32]byte, payload *CachePayload) error {
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
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload; a schema or configuration mismatch counts as
// a miss.
func (c *DiskCache) Get(key [32]byte, cfgFingerprint string, out *CachePayload) (bool, error) {
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
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion || out.Config != cfgFingerprint {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached result.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}

// PayloadFor packages a result for caching under the given
// configuration fingerprint.
func PayloadFor(res *Result, cfgFingerprint string) *CachePayload {
	return &CachePayload{
		Schema:      cacheSchemaVersion,
		Config:      cfgFingerprint,
		Path:        res.Path,
		Diagnostics: res.Diagnostics,
	}
}
