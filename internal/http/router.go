package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/metrics"
	"github.com/guttosm/pallet-service/internal/middleware"
	"github.com/guttosm/pallet-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// RateLimit and RateWindow bound requests per client IP.
	RateLimit  int
	RateWindow time.Duration
	// TenantRateLimit and TenantRateWindow bound API requests per tenant.
	TenantRateLimit   int
	TenantRateWindow  time.Duration
	TenantJWTSecret   string
	EnableIdempotency bool
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LookupService     service.PalletLookupService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:        100,
		RateWindow:       time.Minute,
		TenantRateLimit:  600,
		TenantRateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the pallet service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Configure global middleware
	configureGlobalMiddleware(router, &cfg)

	// Register infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	// Configure tenant-scoped API routes
	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range routeGroups(handler, &cfg) {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

// routeGroups returns the API route groups backed by configured services.
func routeGroups(handler *Handler, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if handler != nil {
		groups = append(groups, NewPartitionRoutes(handler))
	}
	if cfg.LookupService != nil {
		groups = append(groups, NewLookupRoutes(NewLookupHandler(cfg.LookupService)))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	// CORS configuration
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "Cache-Control", "X-Requested-With", "Idempotency-Key", "X-Request-ID", middleware.TenantHeader},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
// The tenant is resolved before rate limiting and idempotency, which are keyed by it.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Tenant(middleware.TenantConfig{JWTSecret: cfg.TenantJWTSecret}))

	if cfg.TenantRateLimit > 0 {
		window := cfg.TenantRateWindow
		if window <= 0 {
			window = time.Minute
		}
		limiter := middleware.NewRateLimiter(cfg.TenantRateLimit, window)
		api.Use(limiter.TenantRateLimit())
	}

	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}
