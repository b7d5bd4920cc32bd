package engine

import (
	"container/list"
	"sync"
)

type (
	lruCache[T any] struct {
		cache   map[string]*list.Element
		lru     *list.List
		maxSize int
		mu      sync.Mutex
	}

	loader[T any] func(key string) (T, error)

	cacheEntry[T any] struct {
		value T
		key   string
	}
)

// DefaultCacheSize bounds a cache constructed with a non-positive size
const DefaultCacheSize = 64

func newLRUCache[T any](maxSize int) *lruCache[T] {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &lruCache[T]{
		cache:   map[string]*list.Element{},
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// Get returns the cached value for key, calling load on a miss. Failed
// loads are not cached
func (c *lruCache[T]) Get(key string, load loader[T]) (T, error) {
	c.mu.Lock()
	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		c.mu.Unlock()
		return elem.Value.(*cacheEntry[T]).value, nil
	}
	c.mu.Unlock()

	value, err := load(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.store(key, value), nil
}

// Len returns the number of cached entries
func (c *lruCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *lruCache[T]) store(key string, value T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry[T]).value
	}

	entry := &cacheEntry[T]{key: key, value: value}
	c.cache[key] = c.lru.PushFront(entry)

	if c.lru.Len() > c.maxSize {
		c.evictLast()
	}
	return value
}

func (c *lruCache[T]) evictLast() {
	back := c.lru.Back()
	if back != nil {
		c.lru.Remove(back)
		backEntry := back.Value.(*cacheEntry[T])
		delete(c.cache, backEntry.key)
	}
}
