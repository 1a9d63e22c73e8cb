package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/service"
)

const auditWriteTimeout = 5 * time.Second

// AuditLog records an operator action on a reception.
// The entry is written asynchronously and never blocks the request.
func AuditLog(loggingService service.LoggingService, c *gin.Context, action, receptionID, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "info", action, receptionID, message, fields)
	storeAuditEntry(loggingService, entry)
}

// AuditLogError records a failed operator action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, action, receptionID, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", action, receptionID, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	storeAuditEntry(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, action, receptionID, message string, fields map[string]interface{}) *model.AuditEntry {
	entry := &model.AuditEntry{
		Timestamp:   time.Now().UTC(),
		Level:       level,
		Message:     message,
		TenantID:    GetTenantID(c),
		ReceptionID: receptionID,
		Action:      action,
		RequestID:   GetRequestID(c),
		IP:          c.ClientIP(),
	}
	if c.Request != nil {
		entry.Method = c.Request.Method
		entry.Path = c.Request.URL.Path
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}

// storeAuditEntry prefers the async worker pool and falls back to a goroutine.
func storeAuditEntry(loggingService service.LoggingService, entry *model.AuditEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		_ = loggingService.CreateEntry(ctx, entry)
	}()
}
