// Package queue publishes pallet events to RabbitMQ for downstream consumers
// such as the label renderer.
package queue

import (
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pallet-service/internal/domain/model"
)

// LabelsRequestedQueue receives one message per label print request.
const LabelsRequestedQueue = "pallet.labels.requested"

// LabelsRequestedEvent asks the label renderer to print the given labels.
// Persisted is false when the partition could not be saved before printing.
type LabelsRequestedEvent struct {
	EventID     string               `json:"event_id"`
	TenantID    string               `json:"tenant_id"`
	ReceptionID string               `json:"reception_id"`
	RequestedAt time.Time            `json:"requested_at"`
	Persisted   bool                 `json:"persisted"`
	Labels      []model.LabelPayload `json:"labels"`
}

// NewLabelsRequestedEvent builds an event with a fresh id.
func NewLabelsRequestedEvent(tenantID, receptionID string, labels []model.LabelPayload, persisted bool) LabelsRequestedEvent {
	return LabelsRequestedEvent{
		EventID:     uuid.NewString(),
		TenantID:    tenantID,
		ReceptionID: receptionID,
		RequestedAt: time.Now().UTC(),
		Persisted:   persisted,
		Labels:      labels,
	}
}
