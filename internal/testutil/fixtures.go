//go:build integration

package testutil

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArrivalTime is the arrival of every fixture reception, 14 Sep 2025 08:30 UTC.
var ArrivalTime = time.Date(2025, 9, 14, 8, 30, 0, 0, time.UTC)

// ReceptionFixture is a reception document as the upstream reception service writes it.
type ReceptionFixture struct {
	ID             primitive.ObjectID
	TenantID       string
	TotalCrates    int
	ClientName     string
	ProductName    string
	ProductVariety string
	RoomName       string
	ArrivalTime    time.Time
	// Pallets holds legacy pallet subdocuments, stored as given.
	Pallets bson.A
}

// NewReception returns a fixture for "Cliente Frutas" (client code CLI) with a fresh id.
func NewReception(tenantID string, totalCrates int) *ReceptionFixture {
	return &ReceptionFixture{
		ID:             primitive.NewObjectID(),
		TenantID:       tenantID,
		TotalCrates:    totalCrates,
		ClientName:     "Cliente Frutas",
		ProductName:    "Apple",
		ProductVariety: "Gala",
		RoomName:       "Room 3",
		ArrivalTime:    ArrivalTime,
	}
}

// WithPallets attaches legacy pallet subdocuments.
func (r *ReceptionFixture) WithPallets(pallets ...bson.M) *ReceptionFixture {
	for _, p := range pallets {
		r.Pallets = append(r.Pallets, p)
	}
	return r
}

// Document renders the fixture with the field names of the receptions collection.
func (r *ReceptionFixture) Document() bson.M {
	doc := bson.M{
		"_id":            r.ID,
		"tenantId":       r.TenantID,
		"totalCrates":    r.TotalCrates,
		"clientName":     r.ClientName,
		"productName":    r.ProductName,
		"productVariety": r.ProductVariety,
		"roomName":       r.RoomName,
		"arrivalTime":    r.ArrivalTime,
	}
	if len(r.Pallets) > 0 {
		doc["pallets"] = r.Pallets
	}
	return doc
}

// Insert writes the fixture and returns its hex id.
func (r *ReceptionFixture) Insert(ctx context.Context, receptions *mongo.Collection) (string, error) {
	if _, err := receptions.InsertOne(ctx, r.Document()); err != nil {
		return "", err
	}
	return r.ID.Hex(), nil
}
