package dto

// Message keys used in error responses.
const (
	MsgKeyInvalidRequest         = "error.invalid_request"
	MsgKeyInvalidRequestBody     = "error.invalid_request_body"
	MsgKeyInternalError          = "error.internal_error"
	MsgKeyUnauthorized           = "error.unauthorized"
	MsgKeyTenantRequired         = "error.tenant_required"
	MsgKeyInvalidTenantToken     = "error.invalid_tenant_token"
	MsgKeyNotFound               = "error.not_found"
	MsgKeyReceptionNotFound      = "error.reception_not_found"
	MsgKeyPalletNotFound         = "error.pallet_not_found"
	MsgKeyRateLimitExceeded      = "error.rate_limit_exceeded"
	MsgKeyConflict               = "error.conflict"
	MsgKeyTimeout                = "error.timeout"
	MsgKeyUnavailable            = "error.service_unavailable"
	MsgKeyInvalidCapacity        = "error.validation.crates_per_pallet"
	MsgKeyCapacityTooLarge       = "error.validation.crates_per_pallet_max"
	MsgKeyInvalidOrdinal         = "error.validation.ordinal"
	MsgKeyInvalidOverride        = "error.validation.override"
	MsgKeyInvalidTotalCrates     = "error.validation.total_crates"
	MsgKeyInvalidLookup          = "error.validation.lookup"
	MsgKeyInvalidScanPayload     = "error.validation.scan_payload"
	MsgKeyInvalidStoredPartition = "error.invalid_stored_partition"
	MsgKeyIdempotencyMismatch    = "error.idempotency_key_reused"
)

var messages = map[string]string{
	MsgKeyInvalidRequest:         "Invalid request",
	MsgKeyInvalidRequestBody:     "Invalid request body",
	MsgKeyInternalError:          "Internal server error",
	MsgKeyUnauthorized:           "Unauthorized",
	MsgKeyTenantRequired:         "A tenant is required: set the X-Tenant-ID header or send a tenant token",
	MsgKeyInvalidTenantToken:     "Invalid or expired tenant token",
	MsgKeyNotFound:               "Resource not found",
	MsgKeyReceptionNotFound:      "Reception not found",
	MsgKeyPalletNotFound:         "Pallet not found",
	MsgKeyRateLimitExceeded:      "Rate limit exceeded",
	MsgKeyConflict:               "Request conflicts with current state",
	MsgKeyTimeout:                "Request timeout",
	MsgKeyUnavailable:            "Service temporarily unavailable",
	MsgKeyInvalidCapacity:        "crates_per_pallet must be a positive integer",
	MsgKeyCapacityTooLarge:       "crates_per_pallet exceeds the configured maximum",
	MsgKeyInvalidOrdinal:         "Pallet ordinal must be 1 or greater",
	MsgKeyInvalidOverride:        "Override crate count must not be negative",
	MsgKeyInvalidTotalCrates:     "total_crates must not be negative",
	MsgKeyInvalidLookup:          "A lookup value is required",
	MsgKeyInvalidScanPayload:     "Scanned payload could not be read",
	MsgKeyInvalidStoredPartition: "Stored partition is invalid",
	MsgKeyIdempotencyMismatch:    "Idempotency-Key was already used with a different request",
}

// Message returns the English message for key, or the key itself when unknown.
func Message(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
