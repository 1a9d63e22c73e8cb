// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pallet-service/config"
	"github.com/guttosm/pallet-service/internal/http"
)

const healthCheckTimeout = 2 * time.Second

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	infra *InfrastructureComponents,
	cfg config.Config,
) *RouterComponents {
	var handlerOpts []http.HandlerOption
	if dbComponents != nil && dbComponents.LoggingService != nil {
		handlerOpts = append(handlerOpts, http.WithLoggingService(dbComponents.LoggingService))
	}
	handler := http.NewHandler(services.Partitions, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers and dependency checks for health monitoring
	if dbComponents != nil {
		if dbComponents.PartitionsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_partitions", dbComponents.PartitionsCircuitBreaker)
		}
		if dbComponents.ReceptionsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_receptions", dbComponents.ReceptionsCircuitBreaker)
		}
		if dbComponents.AuditLogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_audit_logs", dbComponents.AuditLogsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
				defer cancel()
				return db.HealthCheck(ctx)
			}))
		}
	}
	if infra != nil && infra.Index != nil {
		healthHandler.RegisterChecker("redis", http.HealthCheckerFunc(infra.RedisHealthCheck))
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		TenantRateLimit:   cfg.Tenant.RateLimit,
		TenantRateWindow:  cfg.Tenant.RateWindow,
		TenantJWTSecret:   cfg.Tenant.JWTSecret,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LookupService:     services.Lookup,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
