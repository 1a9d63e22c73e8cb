// Package service contains the business logic for the pallet service.
package service

import (
	"time"

	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/metrics"
)

// AllocationCalculator splits a reception's crates into numbered pallets.
type AllocationCalculator interface {
	Compute(totalCrates, cratesPerPallet int, overrides map[int]int) (model.Partition, error)
}

// AllocationCalculatorService implements AllocationCalculator and records metrics.
type AllocationCalculatorService struct {
	maxCratesPerPallet int
}

// Option configures an AllocationCalculatorService.
type Option func(*AllocationCalculatorService)

// WithMaxCratesPerPallet bounds the accepted pallet capacity. Zero disables the bound.
func WithMaxCratesPerPallet(limit int) Option {
	return func(s *AllocationCalculatorService) {
		if limit > 0 {
			s.maxCratesPerPallet = limit
		}
	}
}

// NewAllocationCalculator creates a new calculator with the given options.
func NewAllocationCalculator(opts ...Option) *AllocationCalculatorService {
	s := &AllocationCalculatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compute validates the capacity bound and delegates to ComputePartition.
func (s *AllocationCalculatorService) Compute(totalCrates, cratesPerPallet int, overrides map[int]int) (model.Partition, error) {
	start := time.Now()

	if s.maxCratesPerPallet > 0 && cratesPerPallet > s.maxCratesPerPallet {
		metrics.RecordAllocation(time.Since(start), "validation_error")
		return model.Partition{}, ErrCratesPerPalletTooLarge
	}

	partition, err := ComputePartition(totalCrates, cratesPerPallet, overrides)
	if err != nil {
		metrics.RecordAllocation(time.Since(start), "validation_error")
		return model.Partition{}, err
	}

	metrics.RecordAllocation(time.Since(start), "success")
	return partition, nil
}

// ComputePartition is the pure allocation pass.
//
// Pallets 1..floor(total/cpp) hold cratesPerPallet crates and one partial
// pallet takes the remainder. An override replaces the count at its ordinal,
// clamped to the crates still undistributed. Overrides beyond the default
// pallet count are ignored and no pallet is ever added to absorb a shortfall.
func ComputePartition(totalCrates, cratesPerPallet int, overrides map[int]int) (model.Partition, error) {
	if cratesPerPallet <= 0 {
		return model.Partition{}, ErrInvalidCratesPerPallet
	}
	if totalCrates < 0 {
		return model.Partition{}, ErrNegativeTotalCrates
	}
	for _, crates := range overrides {
		if crates < 0 {
			return model.Partition{}, ErrNegativeOverride
		}
	}

	fullPallets := totalCrates / cratesPerPallet
	palletCount := fullPallets
	if totalCrates%cratesPerPallet > 0 {
		palletCount++
	}

	applied := make(map[int]int)
	pallets := make([]model.Pallet, 0, palletCount)
	remaining := totalCrates

	for i := 1; i <= palletCount; i++ {
		pallet := model.Pallet{Number: i}

		if override, ok := overrides[i]; ok {
			pallet.Crates = min(override, remaining)
			pallet.IsCustom = true
			pallet.IsFull = pallet.Crates == override
			applied[i] = override
		} else if i <= fullPallets {
			// an earlier oversized override can leave less than a full pallet
			pallet.Crates = min(cratesPerPallet, remaining)
			pallet.IsFull = pallet.Crates == cratesPerPallet
		} else {
			pallet.Crates = remaining
		}

		remaining -= pallet.Crates
		pallets = append(pallets, pallet)
	}

	return model.Partition{
		TotalCrates:     totalCrates,
		CratesPerPallet: cratesPerPallet,
		Overrides:       applied,
		Pallets:         pallets,
		TotalCratesUsed: totalCrates - remaining,
	}, nil
}
