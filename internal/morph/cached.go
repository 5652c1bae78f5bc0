package morph

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of (term, category) lookups kept.
const DefaultCacheSize = 10000

type cacheKey struct {
	term string
	cat  Category
}

// CachedLemmatizer wraps a Lemmatizer with an LRU cache. Documents repeat
// their vocabulary heavily, so most lookups after the first are hits.
// The cache is internally synchronized and safe for concurrent use.
type CachedLemmatizer struct {
	inner Lemmatizer
	cache *lru.Cache[cacheKey, []string]
}

// NewCachedLemmatizer creates a cached lemmatizer wrapping inner.
func NewCachedLemmatizer(inner Lemmatizer, cacheSize int) *CachedLemmatizer {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[cacheKey, []string](cacheSize)
	return &CachedLemmatizer{
		inner: inner,
		cache: cache,
	}
}

// Lemmas returns cached candidates if available, otherwise computes and
// caches them.
func (c *CachedLemmatizer) Lemmas(term string, cat Category) []string {
	key := cacheKey{term: term, cat: cat}
	if lemmas, ok := c.cache.Get(key); ok {
		return lemmas
	}

	lemmas := c.inner.Lemmas(term, cat)
	c.cache.Add(key, lemmas)
	return lemmas
}

// Len returns the number of cached entries.
func (c *CachedLemmatizer) Len() int {
	return c.cache.Len()
}

// Purge clears the cache.
func (c *CachedLemmatizer) Purge() {
	c.cache.Purge()
}
