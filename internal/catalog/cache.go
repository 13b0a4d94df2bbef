package catalog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/metrics"
)

// productCache is a thread-safe LRU cache with TTL expiration for catalog
// products. Entries expire after the configured TTL; when the cache is at
// capacity the least recently used entry is evicted. A background goroutine
// sweeps expired entries periodically.
type productCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[int64]*cacheEntry
	head     *cacheEntry
	tail     *cacheEntry
	stopCh   chan struct{}
	stopOnce sync.Once

	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry is one cached product with expiration tracking.
type cacheEntry struct {
	key       int64
	value     model.Product
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newProductCache creates a cache with the given capacity and TTL and starts
// the cleanup goroutine.
func newProductCache(capacity int, ttl time.Duration) *productCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &productCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int64]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a product if it is cached and not expired.
func (c *productCache) Get(key int64) (model.Product, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCatalogCacheOperation("get", "miss")
		return model.Product{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if _, stillExists := c.items[key]; stillExists {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCatalogCacheOperation("get", "expired")
		return model.Product{}, false
	}

	c.mu.Lock()
	c.moveToFront(entry)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCatalogCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or refreshes a product with the configured TTL, evicting the least
// recently used entry when at capacity.
func (c *productCache) Set(key int64, value model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCatalogCacheOperation("evict", "capacity")
	}
}

// Invalidate removes a product from the cache.
func (c *productCache) Invalidate(key int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
	}
}

// Clear removes all entries and resets the counters.
func (c *productCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int64]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
}

// Stop shuts down the cleanup goroutine. Safe to call more than once.
func (c *productCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// CacheStats is a point-in-time view of cache performance.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// Stats returns current cache counters.
func (c *productCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// startCleanup sweeps expired entries once a minute.
func (c *productCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *productCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *productCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *productCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *productCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *productCache) remove(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

func (c *productCache) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.remove(c.tail)
}
