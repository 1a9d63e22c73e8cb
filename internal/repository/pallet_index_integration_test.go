//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPalletIndex_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := testutil.SetupRedis(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, container.Cleanup(ctx))
	}()

	index, err := NewRedisPalletIndex(RedisConfig{Addr: container.Addr, TTL: time.Hour})
	require.NoError(t, err)
	defer func() {
		_ = index.Close()
	}()

	loc := model.PalletLocation{
		TenantID:     "tenant-a",
		ReceptionID:  "reception-1",
		Pallet:       model.Pallet{Number: 3, Crates: 10, IsFull: true, IsCustom: true, Reference: "PAL-20250914-CLI-003"},
		Source:       model.SourcePartitions,
		MatchedField: model.FieldReference,
	}

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, index.Ping(ctx))
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, index.Put(ctx, loc))

		got, err := index.Get(ctx, "tenant-a", "PAL-20250914-CLI-003")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, loc, *got)
	})

	t.Run("tenants are isolated", func(t *testing.T) {
		got, err := index.Get(ctx, "tenant-b", "PAL-20250914-CLI-003")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put many skips entries without reference", func(t *testing.T) {
		second := loc
		second.Pallet = model.Pallet{Number: 4, Crates: 42, Reference: "PAL-20250914-CLI-004"}
		unlabeled := loc
		unlabeled.Pallet = model.Pallet{Number: 5}

		require.NoError(t, index.PutMany(ctx, []model.PalletLocation{second, unlabeled}))

		got, err := index.Get(ctx, "tenant-a", "PAL-20250914-CLI-004")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 4, got.Pallet.Number)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, index.Delete(ctx, "tenant-a", "PAL-20250914-CLI-003", "PAL-20250914-CLI-004"))
		got, err := index.Get(ctx, "tenant-a", "PAL-20250914-CLI-003")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("entries expire", func(t *testing.T) {
		short := NewRedisPalletIndexWithClient(index.client, time.Second)
		require.NoError(t, short.Put(ctx, loc))
		ttl, err := index.client.TTL(ctx, PalletIndexKey("tenant-a", "PAL-20250914-CLI-003")).Result()
		require.NoError(t, err)
		assert.LessOrEqual(t, ttl, time.Second)
	})
}
