package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditLogDocument is an audit entry as stored in MongoDB.
type AuditLogDocument struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp   time.Time              `bson:"timestamp" json:"timestamp"`
	Level       string                 `bson:"level" json:"level"`
	Message     string                 `bson:"message" json:"message"`
	TenantID    string                 `bson:"tenant_id" json:"tenant_id"`
	ReceptionID string                 `bson:"reception_id,omitempty" json:"reception_id,omitempty"`
	Action      string                 `bson:"action" json:"action"`
	RequestID   string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method      string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path        string                 `bson:"path,omitempty" json:"path,omitempty"`
	IP          string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	Error       string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields      map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// AuditLogRepository stores audit entries for partition edits.
type AuditLogRepository struct {
	collection *mongo.Collection
}

// NewAuditLogRepository creates a new audit log repository.
func NewAuditLogRepository(db *MongoDB) *AuditLogRepository {
	return &AuditLogRepository{
		collection: db.AuditLogs,
	}
}

// Create inserts one audit entry.
func (r *AuditLogRepository) Create(ctx context.Context, entry *AuditLogDocument) error {
	prepareAuditLog(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts audit entries in bulk.
func (r *AuditLogRepository) CreateMany(ctx context.Context, entries []*AuditLogDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepareAuditLog(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// ListByReception returns the most recent audit entries of a reception, newest first.
func (r *AuditLogRepository) ListByReception(ctx context.Context, tenantID, receptionID string, limit int) ([]*AuditLogDocument, error) {
	filter := bson.M{"tenant_id": tenantID, "reception_id": receptionID}

	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*AuditLogDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func prepareAuditLog(entry *AuditLogDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}
