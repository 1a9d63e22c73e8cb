package middleware

import (
	"sync"
	"time"
)

// DefaultIdempotencyCacheSize bounds the replay store. Scanner stations retry
// saves and label prints in bursts; the oldest entries go first.
const DefaultIdempotencyCacheSize = 10000

// idempotencyCache keeps replayable responses per tenant-scoped key.
type idempotencyCache struct {
	mu       sync.Mutex
	items    map[string]*cachedResponse
	order    []string
	ttl      time.Duration
	capacity int
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration, capacity int) *idempotencyCache {
	if capacity <= 0 {
		capacity = DefaultIdempotencyCacheSize
	}
	c := &idempotencyCache{
		items:    make(map[string]*cachedResponse),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the live response stored under key.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || c.expired(resp) {
		return nil, false
	}
	return resp, true
}

// Set stores resp under key, evicting the oldest entries beyond capacity.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = c.now()
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = resp

	for len(c.items) > c.capacity && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
}

// Len returns the number of stored entries, expired ones included until swept.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop ends the background sweep.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *idempotencyCache) expired(resp *cachedResponse) bool {
	return c.now().Sub(resp.Timestamp) > c.ttl
}

func (c *idempotencyCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *idempotencyCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.order[:0]
	for _, key := range c.order {
		if resp, ok := c.items[key]; ok && !c.expired(resp) {
			live = append(live, key)
			continue
		}
		delete(c.items, key)
	}
	c.order = live
}
