package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertResult reports the id of a saved partition and whether it was inserted.
// CreatedAt is only set when Created is true.
type UpsertResult struct {
	ID        string
	Created   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartitionRepository stores one partition document per (tenant, reception).
type PartitionRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewPartitionRepository creates a new partition repository.
func NewPartitionRepository(db *MongoDB) *PartitionRepository {
	return &PartitionRepository{
		collection: db.Partitions,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// FindByReception returns the stored partition, or nil when none exists.
func (r *PartitionRepository) FindByReception(ctx context.Context, tenantID, receptionID string) (*PartitionDocument, error) {
	var doc PartitionDocument
	err := r.collection.FindOne(ctx, bson.M{"tenantId": tenantID, "receptionId": receptionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save updates the partition of (tenantID, receptionID) in place or inserts it.
// Repeated saves never create a second document. createdAt is only set on insert.
func (r *PartitionRepository) Save(ctx context.Context, tenantID, receptionID string, doc PartitionDocument) (UpsertResult, error) {
	doc.TenantID = tenantID
	doc.ReceptionID = receptionID
	if err := doc.Validate(); err != nil {
		return UpsertResult{}, err
	}

	filter := bson.M{"tenantId": tenantID, "receptionId": receptionID}
	var existing struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Decode(&existing)
	switch {
	case err == nil:
		return r.update(ctx, existing.ID, doc)
	case !errors.Is(err, mongo.ErrNoDocuments):
		return UpsertResult{}, err
	}

	now := r.now()
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return UpsertResult{}, err
		}
		// another save for the same reception won the insert
		if err := r.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
			return UpsertResult{}, fmt.Errorf("reload after duplicate key: %w", err)
		}
		return r.update(ctx, existing.ID, doc)
	}

	return UpsertResult{ID: doc.ID.Hex(), Created: true, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *PartitionRepository) update(ctx context.Context, id primitive.ObjectID, doc PartitionDocument) (UpsertResult, error) {
	now := r.now()
	update := bson.M{
		"$set": bson.M{
			"totalCrates":        doc.TotalCrates,
			"cratesPerPallet":    doc.CratesPerPallet,
			"customPalletCrates": doc.CustomPalletCrates,
			"pallets":            doc.Pallets,
			"updatedAt":          now,
		},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{ID: id.Hex(), Created: false, UpdatedAt: now}, nil
}

// FindByPallet searches partitions of a tenant for a pallet carrying value in field.
// receptionID, when set, restricts the search to one reception. The most recently
// updated match wins.
func (r *PartitionRepository) FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*PalletMatch, error) {
	filter, ok := palletFilter(field, value)
	if !ok {
		return nil, nil
	}
	filter["tenantId"] = tenantID
	if receptionID != "" {
		filter["receptionId"] = receptionID
	}

	var doc PartitionDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	err := r.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	overrides := doc.Overrides()
	for _, p := range doc.Pallets {
		if p.matches(field, value) {
			return &PalletMatch{ReceptionID: doc.ReceptionID, Pallet: p.ToPallet(overrides)}, nil
		}
	}
	return nil, nil
}

// CountReferencePrefix counts partitions of other receptions holding a reference
// with the given prefix. It backs the client code collision warning.
func (r *PartitionRepository) CountReferencePrefix(ctx context.Context, tenantID, prefix, excludeReceptionID string) (int64, error) {
	filter := bson.M{
		"tenantId":          tenantID,
		"receptionId":       bson.M{"$ne": excludeReceptionID},
		"pallets.reference": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)},
	}
	return r.collection.CountDocuments(ctx, filter)
}

// palletFilter builds the embedded pallet query for a field. Numeric fields
// with a non-numeric value cannot match and report false.
func palletFilter(field model.PalletField, value string) (bson.M, bool) {
	switch field {
	case model.FieldReference:
		return bson.M{"pallets.reference": value}, true
	case model.FieldNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, false
		}
		return bson.M{"pallets.number": n}, true
	case model.FieldPalletNumber:
		values := bson.A{value}
		if n, err := strconv.Atoi(value); err == nil {
			values = append(values, n, float64(n))
		}
		return bson.M{"pallets.palletNumber": bson.M{"$in": values}}, true
	}
	return nil, false
}
