package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the replay store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

// cachedResponse is a replayable response and the fingerprint of the request that produced it.
type cachedResponse struct {
	StatusCode  int
	Headers     map[string]string
	Body        []byte
	Fingerprint string
	Timestamp   time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL, DefaultIdempotencyCacheSize),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the stored 2xx response of a POST, PUT or PATCH carrying
// an Idempotency-Key already seen for the same tenant. Reusing a key for a
// different route or body is rejected with 409. It must run after Tenant.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if !replayableMethod(c.Request.Method) {
			c.Next()
			return
		}
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		fingerprint, err := requestFingerprint(c.Request)
		if err != nil {
			c.Next()
			return
		}
		cacheKey := GetTenantID(c) + "\x00" + key

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			if cached.Fingerprint != fingerprint {
				log := requestLog(c)
				log.Warn().Str("idempotency_key", key).Msg("Idempotency key reused for a different request")
				errorResp := dto.NewError(dto.ErrCodeConflict, dto.Message(dto.MsgKeyIdempotencyMismatch)).
					WithRequestID(GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusConflict, errorResp)
				return
			}
			for k, v := range cached.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
			headers:        make(map[string]string),
		}
		c.Writer = writer

		c.Next()

		// Failed saves must stay retryable under the same key.
		if writer.statusCode >= 200 && writer.statusCode < 300 {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode:  writer.statusCode,
				Headers:     writer.headers,
				Body:        writer.body.Bytes(),
				Fingerprint: fingerprint,
			})
		}
	}
}

func replayableMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

// requestFingerprint hashes method, path and body, restoring the body for the handler.
func requestFingerprint(req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))
	hasher.Write([]byte{0})

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write(body)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// responseWriter captures the response for caching.
type responseWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	headers    map[string]string
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Header() http.Header {
	headers := w.ResponseWriter.Header()
	for k, v := range headers {
		if len(v) > 0 {
			w.headers[k] = v[0]
		}
	}
	return headers
}
