package service

import (
	"testing"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceDate(t *testing.T) {
	fallback := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 9, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		existing  map[int]string
		createdAt time.Time
		expected  time.Time
	}{
		{
			name:      "printed reference wins",
			existing:  map[int]string{1: "PAL-20250901-CLI-001"},
			createdAt: createdAt,
			expected:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "unparseable references fall back to createdAt",
			existing:  map[int]string{1: "legacy-7"},
			createdAt: createdAt,
			expected:  createdAt,
		},
		{
			name:     "never saved",
			expected: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(referenceDate(tt.existing, tt.createdAt, fallback)))
		})
	}
}

func TestDraft_MarkSaved(t *testing.T) {
	d := newDraft("tenant-a", model.Reception{ID: "rec-1", TotalCrates: 100}, nil, 42, time.Now())
	require.NoError(t, d.overrides.Set(1, 20))
	d.capacityDirty = true
	assert.True(t, d.Dirty())

	partition, err := ComputePartition(100, 42, d.overrides.Snapshot())
	require.NoError(t, err)
	AssignReferences(&partition, time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC), "Cliente", nil)

	savedAt := time.Date(2025, 9, 14, 9, 0, 0, 0, time.UTC)
	d.markSaved(repository.UpsertResult{ID: "p-1", Created: true, CreatedAt: savedAt, UpdatedAt: savedAt}, partition)

	assert.False(t, d.Dirty())
	assert.Equal(t, "p-1", d.persistedID)
	require.NotNil(t, d.createdAt)
	assert.True(t, savedAt.Equal(*d.createdAt))
	assert.Equal(t, "PAL-20250914-CLI-001", d.references[1])

	later := savedAt.Add(time.Hour)
	d.markSaved(repository.UpsertResult{ID: "p-1", UpdatedAt: later}, partition)
	assert.True(t, savedAt.Equal(*d.createdAt))
	assert.True(t, later.Equal(*d.updatedAt))

	partition.Pallets = partition.Pallets[:2]
	d.markSaved(repository.UpsertResult{ID: "p-1", UpdatedAt: later}, partition)
	assert.Len(t, d.references, 2)
	assert.NotContains(t, d.references, 3)
}

func TestDraft_DirtyIfIdle(t *testing.T) {
	d := newDraft("tenant-a", model.Reception{ID: "rec-1"}, nil, 42, time.Now())
	d.capacityDirty = true

	assert.True(t, d.dirtyIfIdle())

	d.mu.Lock()
	assert.False(t, d.dirtyIfIdle())
	d.mu.Unlock()
}
