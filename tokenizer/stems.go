package tokenizer

import (
	"sync/atomic"

	"github.com/oarkflow/log"

	"github.com/oarkflow/porter"
	"github.com/oarkflow/porter/janitor"
)

type Stem func(string) (string, error)

var stems = map[Language]Stem{
	ENGLISH: porter.Stem,
}

// CachedStemmer memoises a Stem function in an LRU cache. Failures are not
// cached.
type CachedStemmer struct {
	cache     janitor.DataSource[string, string]
	stem      Stem
	evictions atomic.Int64
}

func NewCachedStemmer(capacity int, stem Stem) *CachedStemmer {
	if stem == nil {
		stem = porter.Stem
	}
	c := &CachedStemmer{
		cache: janitor.NewLRUCache[string, string](capacity),
		stem:  stem,
	}
	c.cache.SetEvictionHandler(func(word, stemmed string) {
		c.evictions.Add(1)
		log.Debug().Str("word", word).Str("stem", stemmed).Msg("Evicted cached stem")
	})
	return c
}

func (c *CachedStemmer) Stem(word string) (string, error) {
	if stemmed, ok := c.cache.Get(word); ok {
		return stemmed, nil
	}
	stemmed, err := c.stem(word)
	if err != nil {
		return "", err
	}
	_ = c.cache.Set(word, stemmed)
	return stemmed, nil
}

// Forget drops one cached word. It returns janitor.ErrKeyNotFound when the
// word is not cached.
func (c *CachedStemmer) Forget(word string) error {
	return c.cache.Del(word)
}

func (c *CachedStemmer) Len() int {
	return c.cache.Len()
}

// Evictions counts entries pushed out by capacity since creation.
func (c *CachedStemmer) Evictions() int64 {
	return c.evictions.Load()
}

// Purge empties the cache; it lets a janitor.Janitor manage the stemmer.
func (c *CachedStemmer) Purge() int {
	return c.cache.Purge()
}
