package repository

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidDocument is returned when a stored or outgoing document fails validation.
var ErrInvalidDocument = errors.New("invalid document")

// PalletDocument is one pallet inside a partition or legacy reception document.
// PalletNumber only appears in historical writes and may be a string or a number.
type PalletDocument struct {
	Number       int         `bson:"number" json:"number"`
	Crates       int         `bson:"crates" json:"crates"`
	IsFull       bool        `bson:"isFull" json:"isFull"`
	Reference    string      `bson:"reference" json:"reference"`
	PalletNumber interface{} `bson:"palletNumber,omitempty" json:"palletNumber,omitempty"`
}

// PartitionDocument is the persisted partition of one reception.
type PartitionDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID           string             `bson:"tenantId" json:"tenantId"`
	ReceptionID        string             `bson:"receptionId" json:"receptionId"`
	TotalCrates        int                `bson:"totalCrates" json:"totalCrates"`
	CratesPerPallet    int                `bson:"cratesPerPallet" json:"cratesPerPallet"`
	CustomPalletCrates map[string]int     `bson:"customPalletCrates" json:"customPalletCrates"`
	Pallets            []PalletDocument   `bson:"pallets" json:"pallets"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewPartitionDocument builds the document for a computed partition.
// overrides holds every operator override, including ones the partition ignored.
func NewPartitionDocument(tenantID, receptionID string, partition model.Partition, overrides map[int]int) PartitionDocument {
	custom := make(map[string]int, len(overrides))
	for ordinal, crates := range overrides {
		custom[strconv.Itoa(ordinal)] = crates
	}

	pallets := make([]PalletDocument, len(partition.Pallets))
	for i, p := range partition.Pallets {
		pallets[i] = PalletDocument{
			Number:    p.Number,
			Crates:    p.Crates,
			IsFull:    p.IsFull,
			Reference: p.Reference,
		}
	}

	return PartitionDocument{
		TenantID:           tenantID,
		ReceptionID:        receptionID,
		TotalCrates:        partition.TotalCrates,
		CratesPerPallet:    partition.CratesPerPallet,
		CustomPalletCrates: custom,
		Pallets:            pallets,
	}
}

// Validate checks the document shape at the storage boundary.
func (d *PartitionDocument) Validate() error {
	if strings.TrimSpace(d.TenantID) == "" {
		return fmt.Errorf("%w: tenantId is empty", ErrInvalidDocument)
	}
	if strings.TrimSpace(d.ReceptionID) == "" {
		return fmt.Errorf("%w: receptionId is empty", ErrInvalidDocument)
	}
	if d.CratesPerPallet <= 0 {
		return fmt.Errorf("%w: cratesPerPallet must be positive, got %d", ErrInvalidDocument, d.CratesPerPallet)
	}
	if d.TotalCrates < 0 {
		return fmt.Errorf("%w: totalCrates is negative", ErrInvalidDocument)
	}
	for key, crates := range d.CustomPalletCrates {
		ordinal, err := strconv.Atoi(key)
		if err != nil || ordinal < 1 {
			return fmt.Errorf("%w: customPalletCrates key %q is not an ordinal", ErrInvalidDocument, key)
		}
		if crates < 0 {
			return fmt.Errorf("%w: customPalletCrates[%s] is negative", ErrInvalidDocument, key)
		}
	}
	for i, p := range d.Pallets {
		if p.Number != i+1 {
			return fmt.Errorf("%w: pallet %d has number %d", ErrInvalidDocument, i+1, p.Number)
		}
		if p.Crates < 0 {
			return fmt.Errorf("%w: pallet %d has negative crates", ErrInvalidDocument, p.Number)
		}
	}
	return nil
}

// Overrides returns customPalletCrates keyed by integer ordinal.
func (d *PartitionDocument) Overrides() map[int]int {
	out := make(map[int]int, len(d.CustomPalletCrates))
	for key, crates := range d.CustomPalletCrates {
		if ordinal, err := strconv.Atoi(key); err == nil {
			out[ordinal] = crates
		}
	}
	return out
}

// References returns stored pallet references keyed by ordinal.
func (d *PartitionDocument) References() map[int]string {
	out := make(map[int]string, len(d.Pallets))
	for _, p := range d.Pallets {
		if p.Reference != "" {
			out[p.Number] = p.Reference
		}
	}
	return out
}

// ToPallet converts a stored pallet. isCustom is restored from the overrides.
func (p PalletDocument) ToPallet(overrides map[int]int) model.Pallet {
	number := p.Number
	if number == 0 {
		if n, ok := palletNumberValue(p.PalletNumber); ok {
			number = n
		}
	}
	_, custom := overrides[number]
	return model.Pallet{
		Number:    number,
		Crates:    p.Crates,
		IsFull:    p.IsFull,
		IsCustom:  custom,
		Reference: p.Reference,
	}
}

// matches reports whether the pallet carries value in the given field.
func (p PalletDocument) matches(field model.PalletField, value string) bool {
	switch field {
	case model.FieldReference:
		return p.Reference == value
	case model.FieldNumber:
		n, err := strconv.Atoi(value)
		return err == nil && p.Number == n
	case model.FieldPalletNumber:
		if s, ok := p.PalletNumber.(string); ok {
			return strings.TrimSpace(s) == value
		}
		want, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		got, ok := palletNumberValue(p.PalletNumber)
		return ok && got == want
	}
	return false
}

// palletNumberValue reads a loosely typed historical palletNumber.
func palletNumberValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}

// ReceptionDocument is a reception written by the reception workflow.
// Pallets is only present on receptions labeled before partitions were stored separately.
type ReceptionDocument struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	TenantID       string             `bson:"tenantId" json:"tenantId"`
	TotalCrates    int                `bson:"totalCrates" json:"totalCrates"`
	ClientName     string             `bson:"clientName" json:"clientName"`
	ProductName    string             `bson:"productName" json:"productName"`
	ProductVariety string             `bson:"productVariety" json:"productVariety"`
	RoomName       string             `bson:"roomName" json:"roomName"`
	ArrivalTime    time.Time          `bson:"arrivalTime" json:"arrivalTime"`
	Pallets        []PalletDocument   `bson:"pallets,omitempty" json:"pallets,omitempty"`
}

// Validate checks the reception fields the allocation engine depends on.
func (d *ReceptionDocument) Validate() error {
	if d.ID.IsZero() {
		return fmt.Errorf("%w: reception id is empty", ErrInvalidDocument)
	}
	if strings.TrimSpace(d.TenantID) == "" {
		return fmt.Errorf("%w: reception %s has no tenantId", ErrInvalidDocument, d.ID.Hex())
	}
	if d.TotalCrates < 0 {
		return fmt.Errorf("%w: reception %s has negative totalCrates", ErrInvalidDocument, d.ID.Hex())
	}
	return nil
}

// ToReception converts the document to the domain model.
func (d *ReceptionDocument) ToReception() model.Reception {
	return model.Reception{
		ID:             d.ID.Hex(),
		TenantID:       d.TenantID,
		TotalCrates:    d.TotalCrates,
		ClientName:     d.ClientName,
		ProductName:    d.ProductName,
		ProductVariety: d.ProductVariety,
		RoomName:       d.RoomName,
		ArrivalTime:    d.ArrivalTime,
	}
}

// PalletMatch is a pallet found by a field search together with its reception.
type PalletMatch struct {
	ReceptionID string
	Pallet      model.Pallet
}
