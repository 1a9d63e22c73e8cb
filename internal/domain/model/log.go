package model

import "time"

// Audit action types.
const (
	ActionOverrideSet    = "override_set"
	ActionOverridesReset = "overrides_reset"
	ActionCapacitySet    = "capacity_set"
	ActionPartitionSave  = "partition_save"
	ActionLabelsPrint    = "labels_print"
)

// AuditEntry records one operator action on a reception's partition.
// Fields carries action-specific context such as the ordinal and crate count.
type AuditEntry struct {
	Timestamp   time.Time              `json:"timestamp"`
	Level       string                 `json:"level"`
	Message     string                 `json:"message"`
	TenantID    string                 `json:"tenant_id"`
	ReceptionID string                 `json:"reception_id,omitempty"`
	Action      string                 `json:"action"`
	RequestID   string                 `json:"request_id,omitempty"`
	Method      string                 `json:"method,omitempty"`
	Path        string                 `json:"path,omitempty"`
	IP          string                 `json:"ip,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Fields      map[string]interface{} `json:"fields,omitempty"`
}

// WithField adds a field to the entry's Fields map.
func (e *AuditEntry) WithField(key string, value interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields adds multiple fields to the entry's Fields map.
func (e *AuditEntry) WithFields(fields map[string]interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}
