package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReceptionRepository reads receptions owned by the reception workflow.
// It never writes: pallets embedded in receptions are a read-only lookup fallback.
type ReceptionRepository struct {
	collection *mongo.Collection
}

// NewReceptionRepository creates a new reception repository.
func NewReceptionRepository(db *MongoDB) *ReceptionRepository {
	return &ReceptionRepository{
		collection: db.Receptions,
	}
}

// Get returns the reception with the given id within a tenant, or nil when absent.
// An id that is not a valid ObjectID hex is reported as absent.
func (r *ReceptionRepository) Get(ctx context.Context, tenantID, receptionID string) (*ReceptionDocument, error) {
	id, err := primitive.ObjectIDFromHex(receptionID)
	if err != nil {
		return nil, nil
	}

	var doc ReceptionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(&doc)
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

// FindByPallet searches pallets embedded in receptions of a tenant.
func (r *ReceptionRepository) FindByPallet(ctx context.Context, tenantID string, field model.PalletField, value, receptionID string) (*PalletMatch, error) {
	filter, ok := palletFilter(field, value)
	if !ok {
		return nil, nil
	}
	filter["tenantId"] = tenantID
	if receptionID != "" {
		id, err := primitive.ObjectIDFromHex(receptionID)
		if err != nil {
			return nil, nil
		}
		filter["_id"] = id
	}

	var doc ReceptionDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "arrivalTime", Value: -1}})
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

	for i, p := range doc.Pallets {
		if !p.matches(field, value) {
			continue
		}
		pallet := p.ToPallet(nil)
		if pallet.Number == 0 {
			// legacy entries without any number are identified by position
			pallet.Number = i + 1
		}
		return &PalletMatch{ReceptionID: doc.ID.Hex(), Pallet: pallet}, nil
	}
	return nil, nil
}

