// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strconv"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
	// Key is the message key rendered to the client.
	Key string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidCratesPerPallet is returned when crates_per_pallet is not positive.
	ErrInvalidCratesPerPallet = &ValidationError{
		Field:   "crates_per_pallet",
		Message: "must be a positive integer",
		Key:     MsgKeyInvalidCapacity,
	}
	// ErrInvalidTotalCrates is returned when total_crates is negative.
	ErrInvalidTotalCrates = &ValidationError{
		Field:   "total_crates",
		Message: "must not be negative",
		Key:     MsgKeyInvalidTotalCrates,
	}
	// ErrInvalidOverrideCrates is returned when an override crate count is negative.
	ErrInvalidOverrideCrates = &ValidationError{
		Field:   "crates",
		Message: "must not be negative",
		Key:     MsgKeyInvalidOverride,
	}
	// ErrInvalidOverrideOrdinal is returned for override ordinals below 1.
	ErrInvalidOverrideOrdinal = &ValidationError{
		Field:   "overrides",
		Message: "ordinals must be 1 or greater",
		Key:     MsgKeyInvalidOrdinal,
	}
	// ErrMissingScanPayload is returned when a scan carries no payload.
	ErrMissingScanPayload = &ValidationError{
		Field:   "payload",
		Message: "is required",
		Key:     MsgKeyInvalidLookup,
	}
)

// PreviewRequest computes a partition without a reception.
//
// @Description Stateless allocation preview
// @Example {"total_crates": 130, "crates_per_pallet": 42, "overrides": {"4": 10}}
type PreviewRequest struct {
	TotalCrates     int `json:"total_crates" example:"130" minimum:"0"`
	CratesPerPallet int `json:"crates_per_pallet" binding:"required" example:"42" minimum:"1"`
	// Overrides maps pallet ordinals to crate counts.
	Overrides map[string]int `json:"overrides,omitempty"`
} // @name PreviewRequest

// Validate performs custom validation on the request.
func (r *PreviewRequest) Validate() error {
	if r.TotalCrates < 0 {
		return ErrInvalidTotalCrates
	}
	if r.CratesPerPallet <= 0 {
		return ErrInvalidCratesPerPallet
	}
	for key, crates := range r.Overrides {
		if ordinal, err := strconv.Atoi(key); err != nil || ordinal < 1 {
			return ErrInvalidOverrideOrdinal
		}
		if crates < 0 {
			return ErrInvalidOverrideCrates
		}
	}
	return nil
}

// OverrideMap returns the overrides keyed by integer ordinal. Call Validate first.
func (r *PreviewRequest) OverrideMap() map[int]int {
	out := make(map[int]int, len(r.Overrides))
	for key, crates := range r.Overrides {
		if ordinal, err := strconv.Atoi(key); err == nil {
			out[ordinal] = crates
		}
	}
	return out
}

// SetCapacityRequest changes the pallet capacity of a draft.
//
// @Description New crates-per-pallet capacity
// @Example {"crates_per_pallet": 40}
type SetCapacityRequest struct {
	CratesPerPallet int `json:"crates_per_pallet" binding:"required" example:"40" minimum:"1"`
} // @name SetCapacityRequest

// Validate performs custom validation on the request.
func (r *SetCapacityRequest) Validate() error {
	if r.CratesPerPallet <= 0 {
		return ErrInvalidCratesPerPallet
	}
	return nil
}

// SetOverrideRequest sets the crate count of one pallet. A pointer distinguishes zero from absent.
//
// @Description Override crate count for one pallet
// @Example {"crates": 30}
type SetOverrideRequest struct {
	Crates *int `json:"crates" binding:"required" example:"30" minimum:"0"`
} // @name SetOverrideRequest

// Validate performs custom validation on the request.
func (r *SetOverrideRequest) Validate() error {
	if r.Crates == nil || *r.Crates < 0 {
		return ErrInvalidOverrideCrates
	}
	return nil
}

// ScanRequest carries raw scanner input.
//
// @Description Raw QR payload or typed pallet value
// @Example {"payload": "{\"t\":\"coldstore-lisbon\",\"r\":\"66f1c0d2a7b4e8a1c9d3e5f7\",\"n\":1,\"ref\":\"PAL-20250914-CLI-001\"}"}
type ScanRequest struct {
	Payload string `json:"payload" binding:"required" example:"PAL-20250914-CLI-001"`
} // @name ScanRequest

// Validate performs custom validation on the request.
func (r *ScanRequest) Validate() error {
	if r.Payload == "" {
		return ErrMissingScanPayload
	}
	return nil
}
