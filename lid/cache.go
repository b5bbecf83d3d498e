package lid

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the prediction cache. Sized so an annotation
// run over a large corpus rarely evicts.
const DefaultCacheSize = 200000

// Cached wraps an Identifier with a bounded LRU keyed by the queried
// word. Safe for concurrent use.
type Cached struct {
	base  Identifier
	cache *lru.Cache[string, Prediction]
}

// NewCached wraps base with an LRU of the given capacity. A size of
// zero or less uses DefaultCacheSize.
func NewCached(base Identifier, size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, Prediction](size)
	if err != nil {
		// size is positive here; New cannot fail.
		panic(err)
	}
	return &Cached{base: base, cache: cache}
}

// Predict returns the cached prediction for word, consulting the base
// identifier on a miss. Zero predictions are cached too: a word the
// backend cannot place stays unplaceable.
func (c *Cached) Predict(word string) Prediction {
	if p, ok := c.cache.Get(word); ok {
		return p
	}
	p := c.base.Predict(word)
	c.cache.Add(word, p)
	return p
}

// Len returns the number of cached predictions.
func (c *Cached) Len() int {
	return c.cache.Len()
}
