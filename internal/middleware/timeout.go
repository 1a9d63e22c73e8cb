package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
)

// DefaultRequestTimeout bounds a request when no timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// Timeout returns a middleware that gives the request context a deadline.
// Handlers run on the request goroutine; repository calls observe the deadline
// and return, and a request that ends past it without a response gets a 504.
// A handler that already answered (with its own 504 or otherwise) is left alone.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		log := requestLog(c)
		log.Warn().
			Dur("timeout", timeout).
			Bool("answered", c.Writer.Written()).
			Msg("Request exceeded its deadline")

		if c.Writer.Written() {
			return
		}
		errorResp := dto.NewError(dto.ErrCodeTimeout, dto.Message(dto.MsgKeyTimeout)).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}
