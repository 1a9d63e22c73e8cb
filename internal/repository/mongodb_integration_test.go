//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pallet-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(testutil.SharedMongoURI(t), testutil.DatabaseName(t))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Partitions)
		assert.NotNil(t, db.Receptions)
		assert.NotNil(t, db.AuditLogs)
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		assert.NoError(t, db.HealthCheck(pingCtx))
	})

	t.Run("partition indexes exist", func(t *testing.T) {
		cursor, err := db.Partitions.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "tenant_reception_unique")
		assert.Contains(t, names, "tenant_pallet_reference")
		assert.Contains(t, names, "tenant_pallet_number")
	})

	t.Run("set audit TTL multiple times", func(t *testing.T) {
		assert.NoError(t, db.SetAuditTTL(ctx, 30*24*time.Hour))
		assert.NoError(t, db.SetAuditTTL(ctx, 7*24*time.Hour))
	})
}
