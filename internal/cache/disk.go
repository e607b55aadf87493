package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskCache persists provider responses across CLI invocations, so repeating
// a question does not re-spend API quota. Entries are sharded into
// subdirectories by the first two characters of the key digest.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk cache rooted at dir.
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Body    []byte    `json:"body"`
	SavedAt time.Time `json:"saved_at"`
	TTLSecs int64     `json:"ttl_seconds"`
}

func (e *diskEntry) expired() bool {
	return time.Since(e.SavedAt) > time.Duration(e.TTLSecs)*time.Second
}

// Get retrieves a value. Expired and unreadable entries are removed.
func (c *DiskCache) Get(key string) ([]byte, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false
	}
	if entry.expired() {
		_ = os.Remove(path)
		return nil, false
	}

	return entry.Body, true
}

// Set stores a value on disk. ttl 0 uses the cache default.
func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(diskEntry{
		Body:    value,
		SavedAt: time.Now(),
		TTLSecs: int64(ttl / time.Second),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Delete removes a value from the disk cache.
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes the whole cache directory.
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// path maps a key to its shard file. Keys carry a "name:version:digest"
// shape; only the digest names the file.
func (c *DiskCache) path(key string) string {
	name := key
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		name = key[i+1:]
	}
	if len(name) < 2 {
		name = "00" + name
	}
	return filepath.Join(c.dir, name[:2], name+".json")
}
