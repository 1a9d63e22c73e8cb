package http

import (
	"github.com/gin-gonic/gin"
)

// PartitionRoutes registers allocation and partition routes.
type PartitionRoutes struct {
	handler *Handler
}

// NewPartitionRoutes creates a new PartitionRoutes instance.
func NewPartitionRoutes(handler *Handler) *PartitionRoutes {
	return &PartitionRoutes{handler: handler}
}

// RegisterRoutes registers the partition routes on the tenant-scoped API group.
func (r *PartitionRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/allocations/preview", r.handler.Preview)

	partition := rg.Group("/receptions/:id/partition")
	partition.GET("", r.handler.OpenPartition)
	partition.PUT("/capacity", r.handler.SetCapacity)
	partition.PUT("/overrides/:ordinal", r.handler.SetOverride)
	partition.DELETE("/overrides", r.handler.ResetOverrides)
	partition.POST("/save", r.handler.SavePartition)
	partition.POST("/labels", r.handler.PrintLabels)
	partition.DELETE("/draft", r.handler.DiscardDraft)
	partition.GET("/history", r.handler.PartitionHistory)
}

// LookupRoutes registers pallet lookup routes.
type LookupRoutes struct {
	handler *LookupHandler
}

// NewLookupRoutes creates a new LookupRoutes instance.
func NewLookupRoutes(handler *LookupHandler) *LookupRoutes {
	return &LookupRoutes{handler: handler}
}

// RegisterRoutes registers the lookup routes on the tenant-scoped API group.
func (r *LookupRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/pallets/lookup", r.handler.Lookup)
	rg.POST("/pallets/scan", r.handler.Scan)
}

var (
	_ RouteGroup = (*PartitionRoutes)(nil)
	_ RouteGroup = (*LookupRoutes)(nil)
)
