package app

import (
	"context"

	"github.com/guttosm/pallet-service/config"
	"github.com/guttosm/pallet-service/internal/queue"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// InfrastructureComponents holds the pallet index and the label event publisher.
type InfrastructureComponents struct {
	Index     *repository.RedisPalletIndex
	Publisher queue.Publisher
}

// InitializeInfrastructure connects the optional Redis index and AMQP publisher.
// A disabled or unreachable Redis leaves Index nil; lookups then fall back to MongoDB.
func InitializeInfrastructure(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *InfrastructureComponents {
	infra := &InfrastructureComponents{Publisher: queue.NoopPublisher{}}

	if redisCfg.Enabled {
		index, err := repository.NewRedisPalletIndex(repository.RedisConfig{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
			TTL:      redisCfg.IndexTTL,
		})
		if err != nil {
			log.Error().Err(err).Str("addr", redisCfg.Addr).Msg("Failed to connect to Redis - continuing without pallet index")
		} else {
			log.Info().Str("addr", redisCfg.Addr).Msg("Connected to Redis")
			infra.Index = index
		}
	}

	if queueCfg.Enabled {
		infra.Publisher = queue.NewAMQPPublisher(queue.AMQPConfig{
			URL:         queueCfg.URL,
			DialTimeout: queueCfg.DialTimeout,
		})
		log.Info().Msg("Label events enabled")
	}

	return infra
}

// PalletIndex returns the index as an interface, nil when Redis is not connected.
func (i *InfrastructureComponents) PalletIndex() repository.PalletIndex {
	if i == nil || i.Index == nil {
		return nil
	}
	return i.Index
}

// RedisHealthCheck pings the pallet index.
func (i *InfrastructureComponents) RedisHealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return i.Index.Ping(ctx)
}

// Close releases the Redis client and the broker connection.
func (i *InfrastructureComponents) Close() {
	if i == nil {
		return
	}
	if i.Index != nil {
		if err := i.Index.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if i.Publisher != nil {
		if err := i.Publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close AMQP publisher")
		}
	}
}
