// Package cache memoizes per-document resolution results so repeated runs
// over the same corpus skip the expensive tagging call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized resolution results.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the preprocessed document text. Keying on
// the text rather than the article id means edits to an article miss the
// cache and get retagged.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "tanit:v1:" + hex.EncodeToString(hash[:])
}
