package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
)

// Recovery returns a middleware that turns a handler panic into a 500 error
// envelope. The draft mutex of the panicking request is released by the
// service's deferred unlock, so the reception stays editable.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// Client went away mid-response; nothing to write.
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log := requestLog(c)
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("Handler panicked")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			errorResp := dto.NewError(dto.ErrCodeInternal, dto.Message(dto.MsgKeyInternalError)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp)
		}()
		c.Next()
	}
}
