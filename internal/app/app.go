// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/config"
	"github.com/guttosm/pallet-service/internal/http"
	"github.com/guttosm/pallet-service/internal/middleware"
)

// Application holds the wired router and the resources released on shutdown.
type Application struct {
	Router *gin.Engine

	database       *DatabaseComponents
	infrastructure *InfrastructureComponents
	asyncLogger    bool
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *Application {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize the pallet index and label event publisher
	infra := InitializeInfrastructure(cfg.Redis, cfg.Queue)

	// Initialize business services
	services := InitializeServices(cfg.Allocation, dbComponents, infra.PalletIndex(), infra.Publisher)

	app := &Application{database: dbComponents, infrastructure: infra}

	// Audit entries are written off the request path
	if dbComponents != nil && dbComponents.LoggingService != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		app.asyncLogger = true
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(services, dbComponents, infra, cfg)
	app.Router = http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	return app
}

// Close drains pending audit entries and releases external connections.
func (a *Application) Close() {
	if a.asyncLogger {
		middleware.StopAsyncLogger()
	}
	a.infrastructure.Close()
	a.database.Close()
}
