// Package cache defines the cache contracts used by the service layer.
package cache

// Cache defines the interface for cache operations.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	// SetIfAbsent stores value unless a live entry exists, returning the entry kept.
	SetIfAbsent(key K, value V) (actual V, stored bool)
	Invalidate(key K)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[K comparable, V any] interface {
	Cache[K, V]
	Metrics() Metrics
}
