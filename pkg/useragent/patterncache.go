package useragent

import (
	"container/list"
	"sync"

	"github.com/dlclark/regexp2"
)

// compiled holds either a ready regex or the error it failed to compile with.
type compiled struct {
	pattern string
	re      *regexp2.Regexp
	err     error
}

// patternCache is a bounded LRU of compiled patterns keyed by pattern text.
type patternCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func newPatternCache(capacity int) *patternCache {
	if capacity <= 0 {
		capacity = defaultPatternCacheSize
	}
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *patternCache) get(pattern string) (*compiled, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*compiled), true
	}
	return nil, false
}

func (c *patternCache) put(entry *compiled) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[entry.pattern]; ok {
		c.order.MoveToFront(elem)
		elem.Value = entry
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*compiled).pattern)
		}
	}
	c.items[entry.pattern] = c.order.PushFront(entry)
}

func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
