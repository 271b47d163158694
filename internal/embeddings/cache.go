package embeddings

import (
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded, content-addressed LRU of computed embeddings.
// Keys are the SHA-256 of the (already truncated) text plus the
// requested dimension, so identical chunks across documents reuse one
// entry. Safe for concurrent use.
type Cache struct {
	inner *lru.Cache[string, []float32]
}

// NewCache creates a cache holding up to size vectors. Returns nil for
// size <= 0, and a nil *Cache is valid: Get always misses and Put is a
// no-op.
func NewCache(size int) *Cache {
	if size <= 0 {
		return nil
	}
	inner, err := lru.New[string, []float32](size)
	if err != nil {
		return nil
	}
	return &Cache{inner: inner}
}

// Len returns the number of cached vectors.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.inner.Len()
}

// Get returns a copy of the cached vector for (text, dim), if present.
// The copy keeps cached entries immutable from the caller's side.
func (c *Cache) Get(text string, dim int) ([]float32, bool) {
	if c == nil {
		return nil, false
	}
	vec, ok := c.inner.Get(cacheKey(text, dim))
	if !ok {
		return nil, false
	}
	out := make([]float32, len(vec))
	copy(out, vec)
	return out, true
}

// Put stores a copy of vec for (text, dim).
func (c *Cache) Put(text string, dim int, vec []float32) {
	if c == nil {
		return
	}
	stored := make([]float32, len(vec))
	copy(stored, vec)
	c.inner.Add(cacheKey(text, dim), stored)
}

func cacheKey(text string, dim int) string {
	h := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x:%d", h, dim)
}
