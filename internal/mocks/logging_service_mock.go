// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateEntry(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateEntries(ctx context.Context, entries []*model.AuditEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]model.AuditEntry, error) {
	args := m.Called(ctx, tenantID, receptionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEntry), args.Error(1)
}
