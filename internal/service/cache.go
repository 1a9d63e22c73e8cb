package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/pallet-service/internal/metrics"
	"github.com/guttosm/pallet-service/internal/service/cache"
)

// ttlCache provides thread-safe LRU caching with TTL expiration.
// Every access refreshes the entry's TTL, so idle entries expire first.
// It implements the cache.CacheWithMetrics interface.
type ttlCache[K comparable, V any] struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[K]*cacheEntry[K, V]
	head      *cacheEntry[K, V]
	tail      *cacheEntry[K, V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
	onEvict   func(key K, value V)
	clock     func() time.Time
}

// cacheEntry represents a single cached item with expiration tracking.
type cacheEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *cacheEntry[K, V]
	next      *cacheEntry[K, V]
}

// newTTLCache creates a new TTL-based LRU cache with the specified capacity and TTL.
// A background goroutine periodically cleans up expired entries.
func newTTLCache[K comparable, V any](capacity int, ttl time.Duration) *ttlCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &ttlCache[K, V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*cacheEntry[K, V], capacity),
		stopCh:   make(chan struct{}),
		clock:    time.Now,
	}
	go c.startCleanup(cleanupInterval(ttl))
	return c
}

// cleanupInterval scans at a quarter of the TTL, bounded to [1s, 1m].
func cleanupInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		return time.Second
	}
	if interval > time.Minute {
		return time.Minute
	}
	return interval
}

// Stop gracefully shuts down the cache's cleanup goroutine.
func (c *ttlCache[K, V]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Metrics returns current cache performance metrics.
func (c *ttlCache[K, V]) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get retrieves a value if it exists and hasn't expired, refreshing its TTL.
func (c *ttlCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		var zero V
		return zero, false
	}

	current := c.clock()
	if current.After(entry.expiresAt) {
		c.evict(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		var zero V
		return zero, false
	}

	entry.expiresAt = current.Add(c.ttl)
	c.moveToFront(entry)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or updates a value in the cache with the configured TTL.
// If the cache is at capacity, the least recently used entry is evicted.
func (c *ttlCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value)
}

// SetIfAbsent stores value unless a live entry exists for key.
func (c *ttlCache[K, V]) SetIfAbsent(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		current := c.clock()
		if !current.After(entry.expiresAt) {
			entry.expiresAt = current.Add(c.ttl)
			c.moveToFront(entry)
			return entry.value, false
		}
		c.evict(entry)
	}

	c.set(key, value)
	return value, true
}

func (c *ttlCache[K, V]) set(key K, value V) {
	expiresAt := c.clock().Add(c.ttl)

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry[K, V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.evict(c.tail)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheSize(len(c.items))
}

// startCleanup runs the background expiry routine.
func (c *ttlCache[K, V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
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

// cleanup removes all expired entries from the cache.
func (c *ttlCache[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.clock()
	for _, entry := range c.items {
		if current.After(entry.expiresAt) {
			c.evict(entry)
			metrics.RecordCacheOperation("evict", "expired")
		}
	}
	metrics.UpdateCacheSize(len(c.items))
}

// evict removes an entry and reports it to the eviction hook.
func (c *ttlCache[K, V]) evict(entry *cacheEntry[K, V]) {
	if entry == nil {
		return
	}
	c.removeEntry(entry)
	atomic.AddInt64(&c.evictions, 1)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}

// removeEntry removes an entry from both the map and the linked list.
func (c *ttlCache[K, V]) removeEntry(entry *cacheEntry[K, V]) {
	delete(c.items, entry.key)
	c.remove(entry)
}

// moveToFront moves an existing entry to the front of the LRU list.
func (c *ttlCache[K, V]) moveToFront(entry *cacheEntry[K, V]) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

// addToFront adds an entry to the front of the LRU list.
func (c *ttlCache[K, V]) addToFront(entry *cacheEntry[K, V]) {
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

// remove removes an entry from the linked list without touching the map.
func (c *ttlCache[K, V]) remove(entry *cacheEntry[K, V]) {
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
	entry.prev = nil
	entry.next = nil
}

// Invalidate removes a specific key from the cache without calling the eviction hook.
func (c *ttlCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
		metrics.UpdateCacheSize(len(c.items))
	}
}

// Clear removes all entries from the cache and resets its counters.
func (c *ttlCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*cacheEntry[K, V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheSize(0)
}

// DraftCache holds open partition drafts keyed by tenant and reception.
type DraftCache = cache.CacheWithMetrics[string, *Draft]

// NewDraftCache creates a draft cache. Drafts idle longer than ttl are dropped,
// discarding their unsaved edits.
func NewDraftCache(capacity int, ttl time.Duration) DraftCache {
	c := newTTLCache[string, *Draft](capacity, ttl)
	c.onEvict = func(key string, d *Draft) {
		if d.dirtyIfIdle() {
			logDraftEvicted(key, d)
		}
	}
	return c
}

// draftKey scopes a reception id to its tenant.
func draftKey(tenantID, receptionID string) string {
	return tenantID + "/" + receptionID
}
