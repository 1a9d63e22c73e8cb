package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/pallet-service/internal/domain/model"
)

// QRPayload encodes the compact JSON carried by a pallet label's QR code.
func QRPayload(tenantID, receptionID string, pallet model.Pallet) string {
	data, _ := json.Marshal(model.ScanPayload{
		TenantID:    tenantID,
		ReceptionID: receptionID,
		Number:      pallet.Number,
		Reference:   pallet.Reference,
	})
	return string(data)
}

// BuildLabels returns one label per pallet, in ordinal order.
func BuildLabels(tenantID string, reception model.Reception, partition model.Partition) []model.LabelPayload {
	labels := make([]model.LabelPayload, 0, len(partition.Pallets))
	for _, p := range partition.Pallets {
		labels = append(labels, model.LabelPayload{
			TenantID:       tenantID,
			ReceptionID:    reception.ID,
			Number:         p.Number,
			Crates:         p.Crates,
			IsFull:         p.IsFull,
			Reference:      p.Reference,
			ClientName:     reception.ClientName,
			ProductName:    reception.ProductName,
			ProductVariety: reception.ProductVariety,
			RoomName:       reception.RoomName,
			ArrivalTime:    reception.ArrivalTime,
			QRPayload:      QRPayload(tenantID, reception.ID, p),
		})
	}
	return labels
}

// ParseScan turns raw scanner input into a lookup query. JSON QR payloads carry
// the reference, reception and ordinal; anything else is treated as a typed value.
// A payload issued for another tenant is rejected.
func ParseScan(tenantID, raw string) (model.LookupQuery, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.LookupQuery{}, ErrEmptyLookup
	}
	if !strings.HasPrefix(raw, "{") {
		return model.LookupQuery{Value: raw}, nil
	}

	var payload model.ScanPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return model.LookupQuery{}, fmt.Errorf("%w: %v", ErrInvalidScanPayload, err)
	}
	if payload.TenantID != "" && payload.TenantID != tenantID {
		return model.LookupQuery{}, fmt.Errorf("%w: issued for another tenant", ErrInvalidScanPayload)
	}

	switch {
	case payload.Reference != "":
		return model.LookupQuery{Value: payload.Reference, ReceptionID: payload.ReceptionID}, nil
	case payload.Number > 0:
		return model.LookupQuery{Value: strconv.Itoa(payload.Number), ReceptionID: payload.ReceptionID}, nil
	}
	return model.LookupQuery{}, fmt.Errorf("%w: no reference or number", ErrInvalidScanPayload)
}
