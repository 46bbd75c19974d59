// Package framecache provides a fixed-capacity least-recently-used cache for
// expensive decoded artifacts such as preview frames and thumbnails.
//
// The cache owns every stored artifact until it is evicted, overwritten, or
// cleared, at which point the artifact's Release hook runs synchronously
// before the operation returns; two live artifacts never share a resource
// slot. Release failures are logged and otherwise non-fatal. All bookkeeping
// is guarded by one mutex; decoding the artifact itself happens outside the
// cache's critical section.
package framecache

import (
	"container/list"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cutline/internal/logging"
)

// ErrInvalidCapacity reports a cache constructed with a non-positive capacity.
var ErrInvalidCapacity = errors.New("framecache: capacity must be positive")

// Releaser is required of every artifact type stored in the cache. Release
// frees the artifact's underlying resource (for example a native decode
// buffer) and is invoked exactly once per stored artifact.
type Releaser interface {
	Release() error
}

type entry[K comparable, V Releaser] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU keyed by a request descriptor.
type Cache[K comparable, V Releaser] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	items    map[K]*list.Element
	logger   *slog.Logger
}

// New constructs a cache holding at most capacity artifacts.
func New[K comparable, V Releaser](capacity int, logger *slog.Logger) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
		logger:   logger,
	}, nil
}

// Get returns the artifact stored under key and promotes it to most recently
// used. The second return value is false on a miss; misses are not errors.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Put stores an artifact under key at the most-recently-used position. An
// existing artifact under the same key is released first; when the cache is
// at capacity the least-recently-used entry is evicted and released before
// the insert.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry[K, V])
		c.release(key, ent.value)
		ent.value = value
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Clear releases every held artifact and empties the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		ent := elem.Value.(*entry[K, V])
		c.release(ent.key, ent.value)
	}
	c.order.Init()
	clear(c.items)
}

// Len returns the number of artifacts currently held.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the fixed capacity set at construction.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

func (c *Cache[K, V]) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, ent.key)
	c.release(ent.key, ent.value)
}

func (c *Cache[K, V]) release(key K, value V) {
	if err := value.Release(); err != nil {
		// The entry is still considered gone; release failures are the
		// artifact's problem, not the cache's.
		c.logger.Warn("artifact release failed", logging.Any("key", key), logging.Error(err))
	}
}
