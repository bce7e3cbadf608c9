// Package cache persists module evaluation results between
// compilations, grounded on the disk cache the driver keeps for parsed
// module metadata (internal/driver's dcache.go "DiskCache stores
// artifacts by ModuleHash"), adapted here to the semantic graph's
// module shape instead of the parser's.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest is a content hash identifying one module's evaluated state.
type Digest [32]byte

// Sum computes the digest of a module's source bytes.
func Sum(source []byte) Digest {
	return sha256.Sum256(source)
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

const schemaVersion uint16 = 1

// Entry is the cached payload for one module (§8 scenario 6's
// module-cycle guard consults InFlight before a module's Entry exists,
// never the cache itself — the cache only ever holds completed
// evaluations).
type Entry struct {
	Schema      uint16
	Path        string
	ContentHash Digest
	// ImportPaths and ImportHashes record the module's direct imports
	// and their content hashes; Get returns them as stored and does not
	// compare them against the imports' current content.
	ImportPaths  []string
	ImportHashes []Digest
	Broken       bool
}

// Cache is a thread-safe, content-addressed on-disk store of module
// Entry values, one file per module keyed by its digest.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initialises a disk cache rooted at dir, creating it if absent.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "modules", key.String()+".mp")
}

// Put serialises and atomically writes e under key.
func (c *Cache) Put(key Digest, e *Entry) error {
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
	tmpName := f.Name()
	defer os.Remove(tmpName)

	e.Schema = schemaVersion
	if err := msgpack.NewEncoder(f).Encode(e); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads and deserialises the Entry stored under key, reporting
// false if no cache file exists or its schema is stale.
func (c *Cache) Get(key Digest) (*Entry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var e Entry
	if err := msgpack.NewDecoder(f).Decode(&e); err != nil {
		return nil, false, err
	}
	if e.Schema != schemaVersion {
		return nil, false, nil
	}
	return &e, true, nil
}

// DropAll invalidates every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}
