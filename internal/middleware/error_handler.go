package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
)

// ErrorHandler returns a middleware that answers errors handlers attached with
// c.Error but did not write. Bind errors become 400s; anything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		status, code, key := http.StatusInternalServerError, dto.ErrCodeInternal, dto.MsgKeyInternalError
		if err.IsType(gin.ErrorTypeBind) {
			status, code, key = http.StatusBadRequest, dto.ErrCodeInvalidRequest, dto.MsgKeyInvalidRequestBody
		}

		log := requestLog(c)
		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.Err(err.Err).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(status, dto.NewError(code, dto.Message(key)).WithRequestID(GetRequestID(c)))
		}
	}
}
