// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPartitionRepositoryInterface struct {
	mock.Mock
}

func (m *MockPartitionRepositoryInterface) FindByReception(ctx context.Context, tenantID, receptionID string) (*repository.PartitionDocument, error) {
	args := m.Called(ctx, tenantID, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PartitionDocument), args.Error(1)
}

func (m *MockPartitionRepositoryInterface) Save(ctx context.Context, tenantID, receptionID string, doc repository.PartitionDocument) (repository.UpsertResult, error) {
	args := m.Called(ctx, tenantID, receptionID, doc)
	return args.Get(0).(repository.UpsertResult), args.Error(1)
}

func (m *MockPartitionRepositoryInterface) FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*repository.PalletMatch, error) {
	args := m.Called(ctx, tenantID, field, value, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PalletMatch), args.Error(1)
}

func (m *MockPartitionRepositoryInterface) CountReferencePrefix(ctx context.Context, tenantID, prefix, excludeReceptionID string) (int64, error) {
	args := m.Called(ctx, tenantID, prefix, excludeReceptionID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReceptionRepositoryInterface struct {
	mock.Mock
}

func (m *MockReceptionRepositoryInterface) Get(ctx context.Context, tenantID, receptionID string) (*repository.ReceptionDocument, error) {
	args := m.Called(ctx, tenantID, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ReceptionDocument), args.Error(1)
}

func (m *MockReceptionRepositoryInterface) FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*repository.PalletMatch, error) {
	args := m.Called(ctx, tenantID, field, value, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PalletMatch), args.Error(1)
}

type MockAuditLogRepositoryInterface struct {
	mock.Mock
}

func (m *MockAuditLogRepositoryInterface) Create(ctx context.Context, entry *repository.AuditLogDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.AuditLogDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditLogRepositoryInterface) ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]*repository.AuditLogDocument, error) {
	args := m.Called(ctx, tenantID, receptionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.AuditLogDocument), args.Error(1)
}

type MockPalletIndex struct {
	mock.Mock
}

func (m *MockPalletIndex) Get(ctx context.Context, tenantID, reference string) (*model.PalletLocation, error) {
	args := m.Called(ctx, tenantID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PalletLocation), args.Error(1)
}

func (m *MockPalletIndex) Put(ctx context.Context, loc model.PalletLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockPalletIndex) PutMany(ctx context.Context, locs []model.PalletLocation) error {
	args := m.Called(ctx, locs)
	return args.Error(0)
}

func (m *MockPalletIndex) Delete(ctx context.Context, tenantID string, references ...string) error {
	args := m.Called(ctx, tenantID, references)
	return args.Error(0)
}

func (m *MockPalletIndex) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
