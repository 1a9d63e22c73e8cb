// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pallet-service/internal/circuitbreaker"
	"github.com/guttosm/pallet-service/internal/domain/model"
)

// PartitionRepositoryWithCircuitBreaker wraps PartitionRepository with circuit breaker protection.
type PartitionRepositoryWithCircuitBreaker struct {
	repo           PartitionRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPartitionRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPartitionRepositoryWithCircuitBreaker(repo PartitionRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PartitionRepositoryWithCircuitBreaker {
	return &PartitionRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByReception returns the stored partition with circuit breaker protection.
func (r *PartitionRepositoryWithCircuitBreaker) FindByReception(ctx context.Context, tenantID, receptionID string) (*PartitionDocument, error) {
	var result *PartitionDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByReception(ctx, tenantID, receptionID)
		return cbErr
	})
	return result, err
}

// Save upserts a partition with circuit breaker protection.
// Validation failures are returned as-is and do not count against the breaker.
func (r *PartitionRepositoryWithCircuitBreaker) Save(ctx context.Context, tenantID, receptionID string, doc PartitionDocument) (UpsertResult, error) {
	doc.TenantID = tenantID
	doc.ReceptionID = receptionID
	if err := doc.Validate(); err != nil {
		return UpsertResult{}, err
	}
	var result UpsertResult
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Save(ctx, tenantID, receptionID, doc)
		return cbErr
	})
	return result, err
}

// FindByPallet searches partitions with circuit breaker protection.
func (r *PartitionRepositoryWithCircuitBreaker) FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*PalletMatch, error) {
	var result *PalletMatch
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByPallet(ctx, tenantID, field, value, receptionID)
		return cbErr
	})
	return result, err
}

// CountReferencePrefix counts colliding references with circuit breaker protection.
// If circuit is open, reports no collisions since the count is advisory.
func (r *PartitionRepositoryWithCircuitBreaker) CountReferencePrefix(ctx context.Context, tenantID, prefix, excludeReceptionID string) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.CountReferencePrefix(ctx, tenantID, prefix, excludeReceptionID)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return 0, nil
	}
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PartitionRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ReceptionRepositoryWithCircuitBreaker wraps ReceptionRepository with circuit breaker protection.
type ReceptionRepositoryWithCircuitBreaker struct {
	repo           ReceptionRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewReceptionRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewReceptionRepositoryWithCircuitBreaker(repo ReceptionRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ReceptionRepositoryWithCircuitBreaker {
	return &ReceptionRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns a reception with circuit breaker protection.
func (r *ReceptionRepositoryWithCircuitBreaker) Get(ctx context.Context, tenantID, receptionID string) (*ReceptionDocument, error) {
	var result *ReceptionDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, tenantID, receptionID)
		return cbErr
	})
	return result, err
}

// FindByPallet searches legacy reception pallets with circuit breaker protection.
func (r *ReceptionRepositoryWithCircuitBreaker) FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*PalletMatch, error) {
	var result *PalletMatch
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByPallet(ctx, tenantID, field, value, receptionID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ReceptionRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// AuditLogRepositoryWithCircuitBreaker wraps AuditLogRepository with circuit breaker protection.
type AuditLogRepositoryWithCircuitBreaker struct {
	repo           AuditLogRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditLogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewAuditLogRepositoryWithCircuitBreaker(repo AuditLogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AuditLogRepositoryWithCircuitBreaker {
	return &AuditLogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single audit entry with circuit breaker protection.
// If circuit is open, silently drops the entry.
func (r *AuditLogRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *AuditLogDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores audit entries with circuit breaker protection.
// If circuit is open, silently drops the entries.
func (r *AuditLogRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*AuditLogDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// ListByReception lists audit entries with circuit breaker protection.
func (r *AuditLogRepositoryWithCircuitBreaker) ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]*AuditLogDocument, error) {
	var result []*AuditLogDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByReception(ctx, tenantID, receptionID, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditLogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
