package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/middleware"
	"github.com/guttosm/pallet-service/internal/service"
)

// LookupHandler resolves scanned and typed pallet values.
type LookupHandler struct {
	lookup service.PalletLookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(lookup service.PalletLookupService) *LookupHandler {
	return &LookupHandler{lookup: lookup}
}

// Lookup handles GET /api/pallets/lookup requests.
//
// @Summary      Look up a pallet
// @Description  Resolves a pallet reference or number to its reception. The index is tried first, then stored partitions and receptions, each by reference, number and palletNumber.
// @Tags         Pallets
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        q query string true "Reference or pallet number"
// @Param        reception_id query string false "Narrows number searches to one reception"
// @Success      200 {object} dto.SuccessResponse{data=model.PalletLocation} "Pallet found"
// @Failure      400 {object} dto.ErrorResponse "Bad request - empty value"
// @Failure      404 {object} dto.ErrorResponse "Pallet not found"
// @Failure      503 {object} dto.ErrorResponse "Pallet storage unavailable"
// @Router       /api/pallets/lookup [get]
func (h *LookupHandler) Lookup(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query := model.LookupQuery{
		Value:       c.Query("q"),
		ReceptionID: c.Query("reception_id"),
	}
	loc, err := h.lookup.Lookup(c.Request.Context(), middleware.GetTenantID(c), query)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(loc)
}

// Scan handles POST /api/pallets/scan requests.
//
// @Summary      Resolve a scan
// @Description  Accepts raw scanner input, either a label QR payload or a typed reference or number, and resolves it to a pallet. QR payloads issued for another tenant are rejected.
// @Tags         Pallets
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant id"
// @Param        request body dto.ScanRequest true "Scanner input"
// @Success      200 {object} dto.SuccessResponse{data=model.PalletLocation} "Pallet found"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid payload"
// @Failure      404 {object} dto.ErrorResponse "Pallet not found"
// @Failure      503 {object} dto.ErrorResponse "Pallet storage unavailable"
// @Router       /api/pallets/scan [post]
func (h *LookupHandler) Scan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, dto.MsgKeyInvalidLookup, err)
		return
	}

	loc, err := h.lookup.Scan(c.Request.Context(), middleware.GetTenantID(c), req.Payload)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(loc)
}
