package service

import (
	"sync"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/logger"
	"github.com/guttosm/pallet-service/internal/repository"
)

// Draft is the in-memory editing session of one reception's partition.
// Its mutex serializes requests for the same reception; the exported
// methods are the only ones that lock.
type Draft struct {
	mu sync.Mutex

	tenantID  string
	reception model.Reception

	cratesPerPallet int
	capacityDirty   bool
	// totalChanged is set when the reception total differs from the stored partition.
	totalChanged bool
	overrides    *OverrideStore

	references    map[int]string
	referenceDate time.Time

	persistedID string
	createdAt   *time.Time
	updatedAt   *time.Time

	collisions int64
}

// newDraft starts a session from the reception and its stored partition, if any.
// openedAt is the fallback reference date for receptions never saved before.
func newDraft(tenantID string, reception model.Reception, stored *repository.PartitionDocument, defaultCratesPerPallet int, openedAt time.Time) *Draft {
	d := &Draft{
		tenantID:        tenantID,
		reception:       reception,
		cratesPerPallet: defaultCratesPerPallet,
		overrides:       NewOverrideStore(nil),
		references:      map[int]string{},
		referenceDate:   openedAt,
	}
	if stored == nil {
		return d
	}

	d.cratesPerPallet = stored.CratesPerPallet
	d.overrides = NewOverrideStore(stored.Overrides())
	d.references = stored.References()
	d.persistedID = stored.ID.Hex()
	d.totalChanged = stored.TotalCrates != reception.TotalCrates

	createdAt, updatedAt := stored.CreatedAt, stored.UpdatedAt
	d.createdAt = &createdAt
	d.updatedAt = &updatedAt
	d.referenceDate = referenceDate(d.references, createdAt, openedAt)
	return d
}

// referenceDate keeps new references on the day already printed on existing labels.
func referenceDate(existing map[int]string, createdAt, fallback time.Time) time.Time {
	for _, ref := range existing {
		if parsed, ok := ParseReference(ref); ok {
			return parsed.Date
		}
	}
	if !createdAt.IsZero() {
		return createdAt
	}
	return fallback
}

// Dirty reports whether the draft has edits that were not saved.
func (d *Draft) Dirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty()
}

// dirtyIfIdle is Dirty without waiting on a draft that is in use.
func (d *Draft) dirtyIfIdle() bool {
	if !d.mu.TryLock() {
		return false
	}
	defer d.mu.Unlock()
	return d.dirty()
}

func (d *Draft) dirty() bool {
	return d.capacityDirty || d.totalChanged || d.overrides.Dirty()
}

// markSaved records a successful save. Callers hold d.mu.
func (d *Draft) markSaved(result repository.UpsertResult, partition model.Partition) {
	d.persistedID = result.ID
	if result.Created {
		createdAt := result.CreatedAt
		d.createdAt = &createdAt
	}
	updatedAt := result.UpdatedAt
	d.updatedAt = &updatedAt

	references := make(map[int]string, len(partition.Pallets))
	for _, p := range partition.Pallets {
		references[p.Number] = p.Reference
	}
	d.references = references
	d.capacityDirty = false
	d.totalChanged = false
	d.overrides.MarkClean()
}

func logDraftEvicted(key string, d *Draft) {
	l := logger.WithReception(d.tenantID, d.reception.ID)
	l.Warn().
		Str("draft", key).
		Msg("Draft expired with unsaved edits")
}
