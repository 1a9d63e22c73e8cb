package service

import "errors"

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrInvalidCratesPerPallet is returned when the pallet capacity is not positive.
	ErrInvalidCratesPerPallet = errors.New("crates per pallet must be a positive integer")
	// ErrCratesPerPalletTooLarge is returned when the capacity exceeds the configured bound.
	ErrCratesPerPalletTooLarge = errors.New("crates per pallet exceeds the configured maximum")
	// ErrNegativeTotalCrates is returned when a reception reports fewer than zero crates.
	ErrNegativeTotalCrates = errors.New("total crates must not be negative")
	// ErrInvalidOrdinal is returned for pallet ordinals below 1.
	ErrInvalidOrdinal = errors.New("pallet ordinal must be 1 or greater")
	// ErrNegativeOverride is returned when an override crate count is negative.
	ErrNegativeOverride = errors.New("override crate count must not be negative")
	// ErrTenantRequired is returned when a call carries no tenant.
	ErrTenantRequired = errors.New("tenant id is required")
	// ErrReceptionNotFound is returned when the reception does not exist for the tenant.
	ErrReceptionNotFound = errors.New("reception not found")
	// ErrPalletNotFound is returned when no lookup strategy resolves the scanned value.
	ErrPalletNotFound = errors.New("pallet not found")
	// ErrLookupUnavailable is returned when a storage location failed and no location found the pallet.
	ErrLookupUnavailable = errors.New("pallet storage unavailable")
	// ErrEmptyLookup is returned for blank lookup values.
	ErrEmptyLookup = errors.New("lookup value is required")
	// ErrInvalidScanPayload is returned when a scanned QR payload cannot be decoded.
	ErrInvalidScanPayload = errors.New("invalid scan payload")
)
