// Package middleware provides HTTP middleware components for the pallet service.
package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/pallet-service/internal/logger"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
)

// Scanner gateways forward their own correlation ids; anything else is replaced.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestID returns a middleware that gives every request an id, echoed in the
// X-Request-ID response header and carried by logs, audit entries and errors.
// A well-formed client id is kept; a missing or malformed one is replaced by a UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// requestLog returns a logger tagged with the request id, the tenant once the
// Tenant middleware resolved one, and the reception of reception routes.
func requestLog(c *gin.Context) zerolog.Logger {
	fields := logger.Logger().With().
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path)
	if tenantID := GetTenantID(c); tenantID != "" {
		fields = fields.Str("tenant_id", tenantID)
	}
	if receptionID := c.Param("id"); receptionID != "" {
		fields = fields.Str("reception_id", receptionID)
	}
	return fields.Logger()
}
