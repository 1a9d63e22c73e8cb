// Package main is the entry point for the pallet-service application.
//
// @title           Pallet Service API
// @version         1.0.0
// @description     API for splitting cold-storage receptions into pallets.
//
//	This service computes pallet partitions, applies per-pallet overrides, generates pallet references and resolves scanned pallets.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pallet-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  TenantHeader
// @in                          header
// @name                        X-Tenant-ID
// @description                 Tenant id. Replaced by a bearer token carrying a tenant_id claim when TENANT_JWT_SECRET is set.
//
// @tag.name        Allocations
// @tag.description Stateless allocation previews
//
// @tag.name        Partitions
// @tag.description Pallet partition drafts, overrides, saving and labels
//
// @tag.name        Pallets
// @tag.description Pallet lookup and scanning
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/pallet-service/docs" // swagger docs

	"github.com/guttosm/pallet-service/config"
	"github.com/guttosm/pallet-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithRequestTimeout(cfg.Server.RequestTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
