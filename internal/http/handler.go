package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/circuitbreaker"
	"github.com/guttosm/pallet-service/internal/domain/dto"
	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/metrics"
	"github.com/guttosm/pallet-service/internal/middleware"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/guttosm/pallet-service/internal/service"
)

// Audit actions recorded for partition routes.
const (
	actionSetCapacity    = "set_capacity"
	actionSetOverride    = "set_override"
	actionResetOverrides = "reset_overrides"
	actionSave           = "save"
	actionPrintLabels    = "print_labels"
	actionDiscard        = "discard"
)

// Handler provides HTTP handlers for partition routes.
type Handler struct {
	partitions service.PartitionService
	logging    service.LoggingService
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLoggingService enables audit entries and the history route.
func WithLoggingService(ls service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.logging = ls
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(partitions service.PartitionService, opts ...HandlerOption) *Handler {
	h := &Handler{partitions: partitions}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Preview handles POST /api/allocations/preview requests.
//
// @Summary      Preview an allocation
// @Description  Computes the pallet partition and consistency report for a crate total, capacity and optional per-pallet overrides. Nothing is stored.
// @Tags         Allocations
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id (ignored when tenant tokens are enabled)"
// @Param        request body dto.PreviewRequest true "Allocation input"
// @Success      200 {object} dto.SuccessResponse{data=model.PreviewResult} "Computed partition"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing tenant"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/allocations/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecordAllocation(0, "validation_error")
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidRequest, err)
		return
	}

	partition, report, err := h.partitions.Preview(req.TotalCrates, req.CratesPerPallet, req.OverrideMap())
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(model.PreviewResult{Partition: partition, Consistency: report})
}

// OpenPartition handles GET /api/receptions/:id/partition requests.
//
// @Summary      Open a reception's partition
// @Description  Returns the draft partition of a reception, loading the stored partition or computing a default one on first access.
// @Tags         Partitions
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Success      200 {object} dto.SuccessResponse{data=model.PartitionView} "Draft partition"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing tenant"
// @Failure      404 {object} dto.ErrorResponse "Reception not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/receptions/{id}/partition [get]
func (h *Handler) OpenPartition(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.partitions.Open(c.Request.Context(), middleware.GetTenantID(c), c.Param("id"))
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// SetCapacity handles PUT /api/receptions/:id/partition/capacity requests.
//
// @Summary      Change pallet capacity
// @Description  Sets the crates-per-pallet capacity of the draft and recomputes it. Overrides are kept.
// @Tags         Partitions
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Param        request body dto.SetCapacityRequest true "New capacity"
// @Success      200 {object} dto.SuccessResponse{data=model.PartitionView} "Updated draft"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid capacity"
// @Failure      404 {object} dto.ErrorResponse "Reception not found"
// @Router       /api/receptions/{id}/partition/capacity [put]
func (h *Handler) SetCapacity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	receptionID := c.Param("id")

	var req dto.SetCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidCapacity, err)
		return
	}

	view, err := h.partitions.SetCratesPerPallet(c.Request.Context(), middleware.GetTenantID(c), receptionID, req.CratesPerPallet)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	h.audit(c, actionSetCapacity, receptionID, "Pallet capacity changed", map[string]interface{}{
		"crates_per_pallet": req.CratesPerPallet,
	})
	builder.SuccessOK(view)
}

// SetOverride handles PUT /api/receptions/:id/partition/overrides/:ordinal requests.
//
// @Summary      Override one pallet
// @Description  Sets the crate count of one pallet, clamped to the crates still undistributed. Overrides beyond the pallet count are kept but add no pallet.
// @Tags         Partitions
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Param        ordinal path int true "Pallet ordinal (1-based)"
// @Param        request body dto.SetOverrideRequest true "Crate count"
// @Success      200 {object} dto.SuccessResponse{data=model.PartitionView} "Updated draft"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ordinal or crate count"
// @Failure      404 {object} dto.ErrorResponse "Reception not found"
// @Router       /api/receptions/{id}/partition/overrides/{ordinal} [put]
func (h *Handler) SetOverride(c *gin.Context) {
	builder := NewResponseBuilder(c)
	receptionID := c.Param("id")

	ordinal, err := strconv.Atoi(c.Param("ordinal"))
	if err != nil || ordinal < 1 {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidOrdinal, err)
		return
	}

	var req dto.SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidOverride, err)
		return
	}

	view, err := h.partitions.SetOverride(c.Request.Context(), middleware.GetTenantID(c), receptionID, ordinal, *req.Crates)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	h.audit(c, actionSetOverride, receptionID, "Pallet override set", map[string]interface{}{
		"ordinal": ordinal,
		"crates":  *req.Crates,
	})
	builder.SuccessOK(view)
}

// ResetOverrides handles DELETE /api/receptions/:id/partition/overrides requests.
//
// @Summary      Reset overrides
// @Description  Removes every override from the draft and recomputes the default partition.
// @Tags         Partitions
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Success      200 {object} dto.SuccessResponse{data=model.PartitionView} "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Reception not found"
// @Router       /api/receptions/{id}/partition/overrides [delete]
func (h *Handler) ResetOverrides(c *gin.Context) {
	builder := NewResponseBuilder(c)
	receptionID := c.Param("id")

	view, err := h.partitions.ResetOverrides(c.Request.Context(), middleware.GetTenantID(c), receptionID)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	h.audit(c, actionResetOverrides, receptionID, "Pallet overrides reset", nil)
	builder.SuccessOK(view)
}

// SavePartition handles POST /api/receptions/:id/partition/save requests.
//
// @Summary      Save the partition
// @Description  Persists the draft partition. Returns 201 on the first save of a reception and 200 on later saves.
// @Tags         Partitions
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Reception id"
// @Success      200 {object} dto.SuccessResponse{data=model.SaveResult} "Partition updated"
// @Success      201 {object} dto.SuccessResponse{data=model.SaveResult} "Partition created"
// @Failure      404 {object} dto.ErrorResponse "Reception not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/receptions/{id}/partition/save [post]
func (h *Handler) SavePartition(c *gin.Context) {
	builder := NewResponseBuilder(c)
	receptionID := c.Param("id")

	result, err := h.partitions.Save(c.Request.Context(), middleware.GetTenantID(c), receptionID)
	if err != nil {
		h.auditError(c, actionSave, receptionID, "Partition save failed", err)
		writeServiceError(builder, err)
		return
	}

	h.audit(c, actionSave, receptionID, "Partition saved", map[string]interface{}{
		"partition_id": result.ID,
		"created":      result.Created,
		"pallets":      result.View.Partition.PalletCount(),
	})
	if result.Created {
		builder.SuccessCreated(result)
		return
	}
	builder.SuccessOK(result)
}

// PrintLabels handles POST /api/receptions/:id/partition/labels requests.
//
// @Summary      Print pallet labels
// @Description  Saves the partition on a best-effort basis and returns one label payload per pallet. Labels are returned even when the save or the label event fails.
// @Tags         Partitions
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Success      200 {object} dto.SuccessResponse{data=model.PrintResult} "Labels"
// @Failure      404 {object} dto.ErrorResponse "Reception not found"
// @Router       /api/receptions/{id}/partition/labels [post]
func (h *Handler) PrintLabels(c *gin.Context) {
	builder := NewResponseBuilder(c)
	receptionID := c.Param("id")

	result, err := h.partitions.PrintLabels(c.Request.Context(), middleware.GetTenantID(c), receptionID)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	fields := map[string]interface{}{
		"labels":    len(result.Labels),
		"persisted": result.Persisted,
		"published": result.Published,
	}
	if result.PersistError != "" {
		fields["persist_error"] = result.PersistError
	}
	h.audit(c, actionPrintLabels, receptionID, "Pallet labels printed", fields)
	builder.SuccessOK(result)
}

// DiscardDraft handles DELETE /api/receptions/:id/partition/draft requests.
//
// @Summary      Discard the draft
// @Description  Drops unsaved edits. The next open reloads the stored partition.
// @Tags         Partitions
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Success      204 "Draft discarded"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing tenant"
// @Router       /api/receptions/{id}/partition/draft [delete]
func (h *Handler) DiscardDraft(c *gin.Context) {
	receptionID := c.Param("id")

	h.partitions.Discard(middleware.GetTenantID(c), receptionID)
	h.audit(c, actionDiscard, receptionID, "Partition draft discarded", nil)
	c.Status(http.StatusNoContent)
}

// PartitionHistory handles GET /api/receptions/:id/partition/history requests.
//
// @Summary      Partition history
// @Description  Lists the newest audit entries recorded for a reception.
// @Tags         Partitions
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        id path string true "Reception id"
// @Param        limit query int false "Maximum entries (default 50, max 500)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.AuditEntry} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Audit log unavailable"
// @Router       /api/receptions/{id}/partition/history [get]
func (h *Handler) PartitionHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.logging == nil {
		builder.Error(http.StatusServiceUnavailable, dto.MsgKeyUnavailable, nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidRequest, err)
			return
		}
		limit = n
	}

	entries, err := h.logging.ListByReception(c.Request.Context(), middleware.GetTenantID(c), c.Param("id"), limit)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}
	builder.SuccessOK(entries)
}

func (h *Handler) audit(c *gin.Context, action, receptionID, message string, fields map[string]interface{}) {
	middleware.AuditLog(h.logging, c, action, receptionID, message, fields)
}

func (h *Handler) auditError(c *gin.Context, action, receptionID, message string, err error) {
	middleware.AuditLogError(h.logging, c, action, receptionID, message, err, nil)
}

// writeServiceError maps service and storage errors to a status and message key.
func writeServiceError(builder *ResponseBuilder, err error) {
	status, key := statusForError(err)
	builder.Error(status, key, err)
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrTenantRequired):
		return http.StatusUnauthorized, dto.MsgKeyTenantRequired
	case errors.Is(err, service.ErrReceptionNotFound):
		return http.StatusNotFound, dto.MsgKeyReceptionNotFound
	case errors.Is(err, service.ErrPalletNotFound):
		return http.StatusNotFound, dto.MsgKeyPalletNotFound
	case errors.Is(err, service.ErrInvalidCratesPerPallet):
		return http.StatusBadRequest, dto.MsgKeyInvalidCapacity
	case errors.Is(err, service.ErrCratesPerPalletTooLarge):
		return http.StatusBadRequest, dto.MsgKeyCapacityTooLarge
	case errors.Is(err, service.ErrNegativeTotalCrates):
		return http.StatusBadRequest, dto.MsgKeyInvalidTotalCrates
	case errors.Is(err, service.ErrInvalidOrdinal):
		return http.StatusBadRequest, dto.MsgKeyInvalidOrdinal
	case errors.Is(err, service.ErrNegativeOverride):
		return http.StatusBadRequest, dto.MsgKeyInvalidOverride
	case errors.Is(err, service.ErrEmptyLookup):
		return http.StatusBadRequest, dto.MsgKeyInvalidLookup
	case errors.Is(err, service.ErrInvalidScanPayload):
		return http.StatusBadRequest, dto.MsgKeyInvalidScanPayload
	case errors.Is(err, service.ErrRepositoryNotConfigured),
		errors.Is(err, service.ErrLookupUnavailable),
		errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, dto.MsgKeyUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.MsgKeyTimeout
	case errors.Is(err, repository.ErrInvalidDocument):
		return http.StatusInternalServerError, dto.MsgKeyInvalidStoredPartition
	default:
		return http.StatusInternalServerError, dto.MsgKeyInternalError
	}
}
