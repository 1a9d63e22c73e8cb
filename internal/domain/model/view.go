package model

import "time"

// PartitionView is the operator-facing state of a reception's draft partition.
//
// @Description Current draft partition with consistency figures
type PartitionView struct {
	Reception   Reception         `json:"reception"`
	Partition   Partition         `json:"partition"`
	Consistency ConsistencyReport `json:"consistency"`
	// Dirty is true when the draft has edits that were not saved.
	Dirty bool `json:"dirty" example:"false"`
	// PersistedID is the id of the stored partition, empty until first save.
	PersistedID string     `json:"persisted_id,omitempty" example:"66f1c0d2a7b4e8a1c9d3e5f8"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	// Warnings lists advisory conditions such as a shortfall or a client code collision.
	Warnings []string `json:"warnings,omitempty"`
} // @name PartitionView

// SaveResult is returned by an explicit save.
//
// @Description Outcome of saving a partition
type SaveResult struct {
	ID      string        `json:"id" example:"66f1c0d2a7b4e8a1c9d3e5f8"`
	Created bool          `json:"created" example:"true"`
	View    PartitionView `json:"view"`
} // @name SaveResult

// PrintResult is returned when labels are requested.
// Labels are produced even when persistence fails.
//
// @Description Labels for every pallet plus persistence and publish outcomes
type PrintResult struct {
	Labels       []LabelPayload `json:"labels"`
	Persisted    bool           `json:"persisted" example:"true"`
	PersistError string         `json:"persist_error,omitempty"`
	Published    bool           `json:"published" example:"true"`
	View         PartitionView  `json:"view"`
} // @name PrintResult

// PreviewResult is a stateless allocation computed without a reception.
//
// @Description Partition and consistency report for the given totals
type PreviewResult struct {
	Partition   Partition         `json:"partition"`
	Consistency ConsistencyReport `json:"consistency"`
} // @name PreviewResult
