// Package metrics provides Prometheus metrics collection for the pallet service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// AllocationsTotal counts partition computations by outcome.
	AllocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_allocations_total",
			Help: "Total number of pallet partition computations",
		},
		[]string{"status"},
	)

	// AllocationDuration tracks partition computation duration.
	AllocationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pallet_allocation_duration_seconds",
			Help:    "Pallet partition computation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// PartitionSavesTotal counts partition saves by result (created, updated, error).
	PartitionSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_partition_saves_total",
			Help: "Total number of partition saves",
		},
		[]string{"result"},
	)

	// ShortfallTotal counts computed partitions that leave crates off every pallet.
	ShortfallTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pallet_partition_shortfall_total",
			Help: "Total number of partitions computed with a crate shortfall",
		},
	)

	// LookupsTotal counts pallet lookups by resolving source and result.
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_lookups_total",
			Help: "Total number of pallet lookups",
		},
		[]string{"source", "result"},
	)

	// LabelPrintsTotal counts label requests by whether the partition was persisted.
	LabelPrintsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_label_prints_total",
			Help: "Total number of label print requests",
		},
		[]string{"persisted"},
	)

	// EventsPublishedTotal counts broker publishes by queue and result.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_events_published_total",
			Help: "Total number of events published to the broker",
		},
		[]string{"queue", "result"},
	)

	// CacheOperationsTotal tracks draft cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_cache_operations_total",
			Help: "Total number of draft cache operations",
		},
		[]string{"operation", "result"},
	)

	// RateLimitedTotal counts rejected requests per limiter scope.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter, by scope",
		},
		[]string{"scope"},
	)

	// AuditEntriesTotal counts audit entries by outcome: written, failed or dropped.
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pallet_audit_entries_total",
			Help: "Audit entries handled by the async writer, by result",
		},
		[]string{"result"},
	)

	// CacheSize tracks the number of open drafts.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "draft_cache_size",
			Help: "Current number of cached partition drafts",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordAllocation records metrics for a partition computation.
func RecordAllocation(duration time.Duration, status string) {
	AllocationDuration.Observe(duration.Seconds())
	AllocationsTotal.WithLabelValues(status).Inc()
}

// RecordShortfall counts a partition computed with undistributed crates.
func RecordShortfall() {
	ShortfallTotal.Inc()
}

// RecordPartitionSave records the result of a partition save.
func RecordPartitionSave(result string) {
	PartitionSavesTotal.WithLabelValues(result).Inc()
}

// RecordLookup records a lookup outcome. Misses use source "none".
func RecordLookup(source, result string) {
	LookupsTotal.WithLabelValues(source, result).Inc()
}

// RecordLabelPrint records a label request.
func RecordLabelPrint(persisted bool) {
	LabelPrintsTotal.WithLabelValues(strconv.FormatBool(persisted)).Inc()
}

// RecordEventPublished records a broker publish attempt.
func RecordEventPublished(queue, result string) {
	EventsPublishedTotal.WithLabelValues(queue, result).Inc()
}

// RecordCacheOperation records metrics for a draft cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize sets the current draft count.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

// RecordRateLimited counts a request rejected by the given limiter scope.
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}

// RecordAuditEntries counts n audit entries with the given result.
func RecordAuditEntries(result string, n int) {
	AuditEntriesTotal.WithLabelValues(result).Add(float64(n))
}
