// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/pallet-service/internal/domain/model"
)

// PartitionRepositoryInterface defines the partition store operations.
type PartitionRepositoryInterface interface {
	FindByReception(ctx context.Context, tenantID, receptionID string) (*PartitionDocument, error)
	Save(ctx context.Context, tenantID, receptionID string, doc PartitionDocument) (UpsertResult, error)
	FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*PalletMatch, error)
	CountReferencePrefix(ctx context.Context, tenantID, prefix, excludeReceptionID string) (int64, error)
}

// ReceptionRepositoryInterface defines the read-only reception operations.
type ReceptionRepositoryInterface interface {
	Get(ctx context.Context, tenantID, receptionID string) (*ReceptionDocument, error)
	FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*PalletMatch, error)
}

// AuditLogRepositoryInterface defines the audit log operations.
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, entry *AuditLogDocument) error
	CreateMany(ctx context.Context, entries []*AuditLogDocument) error
	ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]*AuditLogDocument, error)
}

// PalletIndex caches reference to location mappings.
type PalletIndex interface {
	Get(ctx context.Context, tenantID, reference string) (*model.PalletLocation, error)
	Put(ctx context.Context, loc model.PalletLocation) error
	PutMany(ctx context.Context, locs []model.PalletLocation) error
	Delete(ctx context.Context, tenantID string, references ...string) error
	Ping(ctx context.Context) error
}

var (
	_ PartitionRepositoryInterface = (*PartitionRepository)(nil)
	_ PartitionRepositoryInterface = (*PartitionRepositoryWithCircuitBreaker)(nil)
	_ ReceptionRepositoryInterface = (*ReceptionRepository)(nil)
	_ ReceptionRepositoryInterface = (*ReceptionRepositoryWithCircuitBreaker)(nil)
	_ AuditLogRepositoryInterface  = (*AuditLogRepository)(nil)
	_ AuditLogRepositoryInterface  = (*AuditLogRepositoryWithCircuitBreaker)(nil)
	_ PalletIndex                  = (*RedisPalletIndex)(nil)
)
