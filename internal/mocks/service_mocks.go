// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockPartitionService struct {
	mock.Mock
}

// NewMockPartitionService creates a mock that asserts its expectations on cleanup.
func NewMockPartitionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPartitionService {
	m := &MockPartitionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPartitionService) Preview(totalCrates, cratesPerPallet int, overrides map[int]int) (model.Partition, model.ConsistencyReport, error) {
	args := m.Called(totalCrates, cratesPerPallet, overrides)
	return args.Get(0).(model.Partition), args.Get(1).(model.ConsistencyReport), args.Error(2)
}

func (m *MockPartitionService) Open(ctx context.Context, tenantID, receptionID string) (model.PartitionView, error) {
	args := m.Called(ctx, tenantID, receptionID)
	return args.Get(0).(model.PartitionView), args.Error(1)
}

func (m *MockPartitionService) SetCratesPerPallet(ctx context.Context, tenantID, receptionID string, cratesPerPallet int) (model.PartitionView, error) {
	args := m.Called(ctx, tenantID, receptionID, cratesPerPallet)
	return args.Get(0).(model.PartitionView), args.Error(1)
}

func (m *MockPartitionService) SetOverride(ctx context.Context, tenantID, receptionID string, ordinal, crates int) (model.PartitionView, error) {
	args := m.Called(ctx, tenantID, receptionID, ordinal, crates)
	return args.Get(0).(model.PartitionView), args.Error(1)
}

func (m *MockPartitionService) ResetOverrides(ctx context.Context, tenantID, receptionID string) (model.PartitionView, error) {
	args := m.Called(ctx, tenantID, receptionID)
	return args.Get(0).(model.PartitionView), args.Error(1)
}

func (m *MockPartitionService) Save(ctx context.Context, tenantID, receptionID string) (model.SaveResult, error) {
	args := m.Called(ctx, tenantID, receptionID)
	return args.Get(0).(model.SaveResult), args.Error(1)
}

func (m *MockPartitionService) PrintLabels(ctx context.Context, tenantID, receptionID string) (model.PrintResult, error) {
	args := m.Called(ctx, tenantID, receptionID)
	return args.Get(0).(model.PrintResult), args.Error(1)
}

func (m *MockPartitionService) Discard(tenantID, receptionID string) {
	m.Called(tenantID, receptionID)
}

type MockPalletLookupService struct {
	mock.Mock
}

// NewMockPalletLookupService creates a mock that asserts its expectations on cleanup.
func NewMockPalletLookupService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPalletLookupService {
	m := &MockPalletLookupService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPalletLookupService) Lookup(ctx context.Context, tenantID string, query model.LookupQuery) (*model.PalletLocation, error) {
	args := m.Called(ctx, tenantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PalletLocation), args.Error(1)
}

func (m *MockPalletLookupService) Scan(ctx context.Context, tenantID, raw string) (*model.PalletLocation, error) {
	args := m.Called(ctx, tenantID, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PalletLocation), args.Error(1)
}
