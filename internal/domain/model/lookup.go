package model

import "time"

// PalletField names a searchable pallet attribute.
type PalletField string

const (
	// FieldReference matches the human-readable pallet reference.
	FieldReference PalletField = "reference"
	// FieldNumber matches the pallet ordinal.
	FieldNumber PalletField = "number"
	// FieldPalletNumber matches the alternate ordinal field found in historical writes.
	FieldPalletNumber PalletField = "palletNumber"
)

// LookupFields is the order in which pallet fields are tried.
var LookupFields = []PalletField{FieldReference, FieldNumber, FieldPalletNumber}

// Lookup sources reported on a hit.
const (
	SourceIndex      = "index"
	SourcePartitions = "partitions"
	SourceReceptions = "receptions"
)

// LookupQuery is a scanned or typed value to resolve to a pallet.
// ReceptionID narrows ordinal searches to one reception when known.
type LookupQuery struct {
	Value       string `json:"value" example:"PAL-20250914-CLI-003"`
	ReceptionID string `json:"reception_id,omitempty" example:"66f1c0d2a7b4e8a1c9d3e5f7"`
}

// PalletLocation is the result of a successful pallet lookup.
//
// @Description Owning reception and pallet for a scanned value
type PalletLocation struct {
	TenantID     string      `json:"tenant_id" example:"coldstore-lisbon"`
	ReceptionID  string      `json:"reception_id" example:"66f1c0d2a7b4e8a1c9d3e5f7"`
	Pallet       Pallet      `json:"pallet"`
	Source       string      `json:"source" example:"partitions"`
	MatchedField PalletField `json:"matched_field" swaggertype:"string" example:"reference"`
} // @name PalletLocation

// LabelPayload is everything the label renderer needs for one pallet.
//
// @Description Data for one printable pallet label
type LabelPayload struct {
	TenantID       string    `json:"tenant_id"`
	ReceptionID    string    `json:"reception_id"`
	Number         int       `json:"number" example:"1"`
	Crates         int       `json:"crates" example:"42"`
	IsFull         bool      `json:"is_full" example:"true"`
	Reference      string    `json:"reference" example:"PAL-20250914-CLI-001"`
	ClientName     string    `json:"client_name"`
	ProductName    string    `json:"product_name"`
	ProductVariety string    `json:"product_variety"`
	RoomName       string    `json:"room_name"`
	ArrivalTime    time.Time `json:"arrival_time"`
	// QRPayload is the string to encode in the label's QR code.
	QRPayload string `json:"qr_payload"`
} // @name LabelPayload

// ScanPayload is the compact JSON document encoded in pallet QR codes.
type ScanPayload struct {
	TenantID    string `json:"t"`
	ReceptionID string `json:"r"`
	Number      int    `json:"n"`
	Reference   string `json:"ref"`
}
