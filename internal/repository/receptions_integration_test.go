//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestReceptionRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := openTestDB(t)

	repo := NewReceptionRepository(db)

	fixture := testutil.NewReception("tenant-a", 130).WithPallets(
		bson.M{"number": 1, "crates": 42, "isFull": true, "reference": "PAL-20250914-CLI-001"},
		bson.M{"crates": 42, "isFull": true, "palletNumber": int32(2)},
	)
	_, err := fixture.Insert(ctx, db.Receptions)
	require.NoError(t, err)
	id, arrival := fixture.ID, fixture.ArrivalTime

	t.Run("get reception", func(t *testing.T) {
		doc, err := repo.Get(ctx, "tenant-a", id.Hex())
		require.NoError(t, err)
		require.NotNil(t, doc)

		reception := doc.ToReception()
		assert.Equal(t, id.Hex(), reception.ID)
		assert.Equal(t, 130, reception.TotalCrates)
		assert.Equal(t, "Cliente Frutas", reception.ClientName)
		assert.True(t, arrival.Equal(reception.ArrivalTime))
	})

	t.Run("reception of another tenant is not visible", func(t *testing.T) {
		doc, err := repo.Get(ctx, "tenant-b", id.Hex())
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("invalid id is not found", func(t *testing.T) {
		doc, err := repo.Get(ctx, "tenant-a", "not-an-object-id")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("legacy pallet by reference", func(t *testing.T) {
		match, err := repo.FindByPallet(ctx, "tenant-a", model.FieldReference, "PAL-20250914-CLI-001", "")
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, id.Hex(), match.ReceptionID)
		assert.Equal(t, 1, match.Pallet.Number)
	})

	t.Run("legacy pallet by numeric palletNumber", func(t *testing.T) {
		match, err := repo.FindByPallet(ctx, "tenant-a", model.FieldPalletNumber, "2", id.Hex())
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, 2, match.Pallet.Number)
		assert.Equal(t, 42, match.Pallet.Crates)
	})

	t.Run("unknown pallet", func(t *testing.T) {
		match, err := repo.FindByPallet(ctx, "tenant-a", model.FieldReference, "PAL-20250914-CLI-404", "")
		require.NoError(t, err)
		assert.Nil(t, match)
	})
}
