package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFeedConfigs indicates invalid feed settings (for example,
	// an empty endpoint or a non-positive request timeout).
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive daily interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
