package service

import (
	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CheckConsistency compares the crates placed on pallets with the reception total.
// The report is advisory: callers surface it but never block on it.
func CheckConsistency(partition model.Partition) model.ConsistencyReport {
	used := 0
	for _, p := range partition.Pallets {
		used += p.Crates
	}

	report := model.ConsistencyReport{
		TotalCrates:     partition.TotalCrates,
		TotalCratesUsed: used,
		Shortfall:       partition.TotalCrates - used,
	}

	switch {
	case report.Shortfall > 0:
		report.Status = model.ConsistencyShortfall
	case report.Shortfall < 0:
		report.Status = model.ConsistencyOverflow
	default:
		report.Status = model.ConsistencyBalanced
	}

	if partition.TotalCrates == 0 {
		report.Utilization = hundred
		return report
	}
	report.Utilization = decimal.NewFromInt(int64(used)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(partition.TotalCrates))).
		Round(2)
	return report
}
