package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
	"github.com/guttosm/pallet-service/internal/metrics"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16

	// ScopeIP and ScopeTenant label the identifier a request was limited by.
	ScopeIP     = "ip"
	ScopeTenant = "tenant"
)

// window tracks the remaining quota of one identifier.
type window struct {
	tokens  int
	resetAt time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// ShardedRateLimiter is a fixed-window limiter keyed by client IP or tenant.
// Identifiers are spread over shards so scanner bursts from one cold store do
// not serialize behind another's.
type ShardedRateLimiter struct {
	shards   []*rateLimiterShard
	rate     int
	period   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per period.
func NewRateLimiter(rate int, period time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, period, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter with a custom shard count.
func NewShardedRateLimiter(rate int, period time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{windows: make(map[string]*window)}
	}

	rl := &ShardedRateLimiter{
		shards: shards,
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow takes one token from identifier's window.
func (rl *ShardedRateLimiter) allow(identifier string) (allowed bool, remaining int) {
	shard := rl.shardFor(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := rl.now()
	w, exists := shard.windows[identifier]
	if !exists || !now.Before(w.resetAt) {
		shard.windows[identifier] = &window{tokens: rl.rate - 1, resetAt: now.Add(rl.period)}
		return true, rl.rate - 1
	}
	if w.tokens <= 0 {
		return false, 0
	}
	w.tokens--
	return true, w.tokens
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.limit(c, ScopeIP, ScopeIP+":"+c.ClientIP())
	}
}

// TenantRateLimit returns a middleware that limits requests per tenant, falling
// back to the client IP when no tenant was resolved. It must run after Tenant.
func (rl *ShardedRateLimiter) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, identifier := tenantIdentifier(c)
		rl.limit(c, scope, identifier)
	}
}

func (rl *ShardedRateLimiter) limit(c *gin.Context, scope, identifier string) {
	allowed, remaining := rl.allow(identifier)

	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	if allowed {
		c.Next()
		return
	}

	metrics.RecordRateLimited(scope)
	log := requestLog(c)
	log.Warn().
		Str("scope", scope).
		Int("limit", rl.rate).
		Dur("period", rl.period).
		Msg("Rate limit exceeded")

	c.Header("Retry-After", strconv.Itoa(int(rl.period.Seconds())))
	errorResp := dto.NewError(dto.ErrCodeRateLimit, dto.Message(dto.MsgKeyRateLimitExceeded)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
}

func tenantIdentifier(c *gin.Context) (scope, identifier string) {
	if tenantID := GetTenantID(c); tenantID != "" {
		return ScopeTenant, ScopeTenant + ":" + tenantID
	}
	return ScopeIP, ScopeIP + ":" + c.ClientIP()
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// evictExpired drops windows that ended more than one period ago.
func (rl *ShardedRateLimiter) evictExpired() {
	cutoff := rl.now().Add(-rl.period)
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, w := range shard.windows {
			if w.resetAt.Before(cutoff) {
				delete(shard.windows, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the eviction loop. It is safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
