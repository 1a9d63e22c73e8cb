package service

import "sort"

// OverrideStore holds operator-specified crate counts keyed by pallet ordinal.
// It is not safe for concurrent use; callers hold the owning draft's lock.
type OverrideStore struct {
	overrides map[int]int
	dirty     bool
}

// NewOverrideStore creates a clean store seeded with previously persisted overrides.
// Entries with an invalid ordinal or a negative count are dropped.
func NewOverrideStore(initial map[int]int) *OverrideStore {
	s := &OverrideStore{overrides: make(map[int]int, len(initial))}
	for ordinal, crates := range initial {
		if ordinal >= 1 && crates >= 0 {
			s.overrides[ordinal] = crates
		}
	}
	return s
}

// Set records an override and marks the store dirty.
func (s *OverrideStore) Set(ordinal, crates int) error {
	if ordinal < 1 {
		return ErrInvalidOrdinal
	}
	if crates < 0 {
		return ErrNegativeOverride
	}
	s.overrides[ordinal] = crates
	s.dirty = true
	return nil
}

// Get returns the override for an ordinal.
func (s *OverrideStore) Get(ordinal int) (int, bool) {
	crates, ok := s.overrides[ordinal]
	return crates, ok
}

// ResetAll removes every override.
func (s *OverrideStore) ResetAll() {
	if len(s.overrides) == 0 {
		return
	}
	s.overrides = make(map[int]int)
	s.dirty = true
}

// Len returns the number of overrides.
func (s *OverrideStore) Len() int {
	return len(s.overrides)
}

// Ordinals returns the overridden ordinals in ascending order.
func (s *OverrideStore) Ordinals() []int {
	return sortedOrdinals(s.overrides)
}

func sortedOrdinals[V any](m map[int]V) []int {
	ordinals := make([]int, 0, len(m))
	for ordinal := range m {
		ordinals = append(ordinals, ordinal)
	}
	sort.Ints(ordinals)
	return ordinals
}

// Snapshot returns a copy of the overrides.
func (s *OverrideStore) Snapshot() map[int]int {
	out := make(map[int]int, len(s.overrides))
	for ordinal, crates := range s.overrides {
		out[ordinal] = crates
	}
	return out
}

// Dirty reports whether the overrides changed since the last MarkClean.
func (s *OverrideStore) Dirty() bool {
	return s.dirty
}

// MarkClean clears the dirty flag after a successful save.
func (s *OverrideStore) MarkClean() {
	s.dirty = false
}
