//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/pallet-service/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
	assert.NotPanics(t, components.Close)
}

func TestNewCircuitBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 3,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Second,
	}

	cb := newCircuitBreaker(cfg, "mongodb-partitions")

	assert.Equal(t, "mongodb-partitions", cb.Name())
	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}
