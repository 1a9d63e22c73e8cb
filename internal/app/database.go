// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pallet-service/config"
	"github.com/guttosm/pallet-service/internal/circuitbreaker"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/guttosm/pallet-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                       *repository.MongoDB
	PartitionRepo            repository.PartitionRepositoryInterface
	ReceptionRepo            repository.ReceptionRepositoryInterface
	LoggingService           service.LoggingService
	PartitionsCircuitBreaker *circuitbreaker.CircuitBreaker
	ReceptionsCircuitBreaker *circuitbreaker.CircuitBreaker
	AuditLogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.AuditTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.SetAuditTTL(ctx, cfg.AuditTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set audit log TTL index")
		}
		cancel()
	}

	partitionsCB := newCircuitBreaker(cfg, "mongodb-partitions")
	receptionsCB := newCircuitBreaker(cfg, "mongodb-receptions")
	auditCB := newCircuitBreaker(cfg, "mongodb-audit-logs")

	auditRepo := repository.NewAuditLogRepositoryWithCircuitBreaker(repository.NewAuditLogRepository(db), auditCB)

	return &DatabaseComponents{
		DB:                       db,
		PartitionRepo:            repository.NewPartitionRepositoryWithCircuitBreaker(repository.NewPartitionRepository(db), partitionsCB),
		ReceptionRepo:            repository.NewReceptionRepositoryWithCircuitBreaker(repository.NewReceptionRepository(db), receptionsCB),
		LoggingService:           service.NewLoggingService(auditRepo),
		PartitionsCircuitBreaker: partitionsCB,
		ReceptionsCircuitBreaker: receptionsCB,
		AuditLogsCircuitBreaker:  auditCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
