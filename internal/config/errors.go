package config

import "errors"

// Validation errors returned when the merged configuration is incomplete
// or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing key was provided.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidTokenDuration indicates a non-positive token lifetime.
	ErrInvalidTokenDuration = errors.New("token durations must be positive")
	// ErrInvalidBcryptCost indicates a bcrypt cost outside the supported range.
	ErrInvalidBcryptCost = errors.New("invalid bcrypt cost")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates missing client server address or
	// request timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
