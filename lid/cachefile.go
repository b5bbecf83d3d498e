package lid

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// cacheEntry is the on-disk form of one cached prediction.
type cacheEntry struct {
	Word       string  `msgpack:"w"`
	Lang       string  `msgpack:"l"`
	Confidence float64 `msgpack:"c"`
}

// SaveFile writes the cache contents to path with msgpack, oldest
// entries first so a later LoadFile reproduces the recency order.
func (c *Cached) SaveFile(path string) error {
	keys := c.cache.Keys()
	entries := make([]cacheEntry, 0, len(keys))
	for _, k := range keys {
		if p, ok := c.cache.Peek(k); ok {
			entries = append(entries, cacheEntry{Word: k, Lang: p.Lang, Confidence: p.Confidence})
		}
	}

	data, err := msgpack.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode prediction cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prediction cache: %w", err)
	}
	return nil
}

// LoadFile warms the cache from a snapshot written by SaveFile. A
// missing file is a no-op; a corrupt file is an error.
func (c *Cached) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read prediction cache: %w", err)
	}

	var entries []cacheEntry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode prediction cache %q: %w", path, err)
	}
	for _, e := range entries {
		c.cache.Add(e.Word, Prediction{Lang: e.Lang, Confidence: e.Confidence})
	}
	return nil
}
