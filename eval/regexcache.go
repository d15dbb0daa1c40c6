package eval

import (
	"regexp"
	"sync"
)

// SharedRegexCache is an opt-in regex cache one process can share
// across several Evaluator instances. Reads take a shared lock; a miss
// then takes the exclusive lock and rechecks before compiling, so
// concurrent cache hits do not block each other and a pattern is
// compiled successfully at most once.
type SharedRegexCache struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

// NewSharedRegexCache builds an empty shared cache.
func NewSharedRegexCache() *SharedRegexCache {
	return &SharedRegexCache{cache: make(map[string]*regexp.Regexp)}
}

func (c *SharedRegexCache) get(src string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.cache[src]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.cache[src]; ok {
		return re, nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	c.cache[src] = re
	return re, nil
}
