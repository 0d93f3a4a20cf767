package tiktoken

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentstation/tiktoken/internal/vocab"
)

// spanCache memoizes the span encoder's result for a word span's byte
// content, since BPE on a given string always produces the same token
// sequence and common words recur constantly in real text.
type spanCache struct {
	cache *lru.Cache[string, []vocab.Token]
}

// newSpanCache builds a cache with the given capacity. size == 0 disables
// caching: get always misses and put is a no-op.
func newSpanCache(size int) *spanCache {
	if size <= 0 {
		return &spanCache{}
	}
	c, _ := lru.New[string, []vocab.Token](size)
	return &spanCache{cache: c}
}

func (c *spanCache) get(span string) ([]vocab.Token, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(span)
}

func (c *spanCache) put(span string, tokens []vocab.Token) {
	if c.cache == nil {
		return
	}
	c.cache.Add(span, tokens)
}
