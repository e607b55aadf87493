package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching provider responses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResponseKey generates a cache key for one provider answer. The same
// question to the same provider and model always maps to the same key.
func ResponseKey(provider, model, question string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + question))
	return "civicai:v1:" + hex.EncodeToString(hash[:])
}
