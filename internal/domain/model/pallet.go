// Package model defines the core domain entities for the pallet service.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reception is a recorded delivery of crates from a client.
// It is owned by the reception workflow and never mutated here.
//
// @Description Reception read from the reception workflow
type Reception struct {
	ID             string    `json:"id" example:"66f1c0d2a7b4e8a1c9d3e5f7"`
	TenantID       string    `json:"tenant_id" example:"coldstore-lisbon"`
	TotalCrates    int       `json:"total_crates" example:"130"`
	ClientName     string    `json:"client_name" example:"Cliente Frutas"`
	ProductName    string    `json:"product_name" example:"Apple"`
	ProductVariety string    `json:"product_variety" example:"Gala"`
	RoomName       string    `json:"room_name" example:"Room 3"`
	ArrivalTime    time.Time `json:"arrival_time" example:"2025-09-14T08:30:00Z"`
} // @name Reception

// Pallet is a physical stacking unit holding a subset of a reception's crates.
//
// @Description Pallet derived from a partition
// @Example {"number": 1, "crates": 42, "is_full": true, "is_custom": false, "reference": "PAL-20250914-CLI-001"}
type Pallet struct {
	// Number is the 1-based contiguous ordinal.
	Number    int    `json:"number" example:"1"`
	Crates    int    `json:"crates" example:"42"`
	IsFull    bool   `json:"is_full" example:"true"`
	IsCustom  bool   `json:"is_custom" example:"false"`
	Reference string `json:"reference,omitempty" example:"PAL-20250914-CLI-001"`
} // @name Pallet

// Partition is the assignment of a reception's crates across its pallets.
//
// @Description Pallet partition of a reception
type Partition struct {
	TotalCrates     int         `json:"total_crates" example:"100"`
	CratesPerPallet int         `json:"crates_per_pallet" example:"42"`
	Overrides       map[int]int `json:"overrides,omitempty"`
	Pallets         []Pallet    `json:"pallets"`
	TotalCratesUsed int         `json:"total_crates_used" example:"94"`
} // @name Partition

// PalletCount returns the number of pallets in the partition.
func (p Partition) PalletCount() int {
	return len(p.Pallets)
}

// Pallet returns the pallet with the given ordinal.
func (p Partition) Pallet(number int) (Pallet, bool) {
	if number < 1 || number > len(p.Pallets) {
		return Pallet{}, false
	}
	return p.Pallets[number-1], true
}

// Consistency statuses reported by the consistency check.
const (
	ConsistencyBalanced  = "balanced"
	ConsistencyShortfall = "shortfall"
	ConsistencyOverflow  = "overflow"
)

// ConsistencyReport summarizes how many crates a partition actually places.
// A non-zero Shortfall is advisory and never blocks a save.
//
// @Description Advisory consistency figures for a partition
type ConsistencyReport struct {
	TotalCrates     int    `json:"total_crates" example:"100"`
	TotalCratesUsed int    `json:"total_crates_used" example:"94"`
	Shortfall       int    `json:"shortfall" example:"6"`
	Status          string `json:"status" example:"shortfall"`
	// Utilization is the share of crates placed on pallets, in percent.
	Utilization decimal.Decimal `json:"utilization" swaggertype:"string" example:"94"`
} // @name ConsistencyReport

// Balanced reports whether every crate is placed on exactly one pallet.
func (r ConsistencyReport) Balanced() bool {
	return r.Status == ConsistencyBalanced
}
