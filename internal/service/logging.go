package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/repository"
)

const (
	defaultAuditHistoryLimit = 50
	maxAuditHistoryLimit     = 500
)

// LoggingService stores and lists audit entries.
// This interface can be mocked for testing.
type LoggingService interface {
	// CreateEntry stores a single audit entry.
	CreateEntry(ctx context.Context, entry *model.AuditEntry) error

	// CreateEntries stores multiple audit entries in bulk.
	CreateEntries(ctx context.Context, entries []*model.AuditEntry) error

	// ListByReception returns the newest entries of a reception.
	ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]model.AuditEntry, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo repository.AuditLogRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.AuditLogRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo: repo,
	}
}

// CreateEntry stores a single audit entry.
func (s *LoggingServiceImpl) CreateEntry(ctx context.Context, entry *model.AuditEntry) error {
	if entry == nil {
		return nil
	}
	return s.repo.Create(ctx, entryToDocument(entry))
}

// CreateEntries stores multiple audit entries in bulk.
func (s *LoggingServiceImpl) CreateEntries(ctx context.Context, entries []*model.AuditEntry) error {
	docs := make([]*repository.AuditLogDocument, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			docs = append(docs, entryToDocument(entry))
		}
	}
	if len(docs) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, docs)
}

// ListByReception returns the newest entries of a reception.
// limit is clamped to [1, 500]; zero selects the default of 50.
func (s *LoggingServiceImpl) ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]model.AuditEntry, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}
	switch {
	case limit <= 0:
		limit = defaultAuditHistoryLimit
	case limit > maxAuditHistoryLimit:
		limit = maxAuditHistoryLimit
	}

	docs, err := s.repo.ListByReception(ctx, tenantID, receptionID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = documentToEntry(doc)
	}
	return entries, nil
}

// entryToDocument converts a domain entry to a repository document.
func entryToDocument(entry *model.AuditEntry) *repository.AuditLogDocument {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.AuditLogDocument{
		Timestamp:   entry.Timestamp,
		Level:       entry.Level,
		Message:     entry.Message,
		TenantID:    entry.TenantID,
		ReceptionID: entry.ReceptionID,
		Action:      entry.Action,
		RequestID:   entry.RequestID,
		Method:      entry.Method,
		Path:        entry.Path,
		IP:          entry.IP,
		Error:       entry.Error,
		Fields:      entry.Fields,
	}
}

// documentToEntry converts a repository document to a domain entry.
func documentToEntry(doc *repository.AuditLogDocument) model.AuditEntry {
	return model.AuditEntry{
		Timestamp:   doc.Timestamp,
		Level:       doc.Level,
		Message:     doc.Message,
		TenantID:    doc.TenantID,
		ReceptionID: doc.ReceptionID,
		Action:      doc.Action,
		RequestID:   doc.RequestID,
		Method:      doc.Method,
		Path:        doc.Path,
		IP:          doc.IP,
		Error:       doc.Error,
		Fields:      doc.Fields,
	}
}
