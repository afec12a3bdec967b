package generation

import "errors"

// Common errors returned by the generation package and its providers.
var (
	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrMissingCredential is returned when the provider's API key is not set.
	ErrMissingCredential = errors.New("generation API credential not configured")

	// ErrUnavailable is returned by the placeholder generator installed when
	// no provider could be configured at startup.
	ErrUnavailable = errors.New("generation backend is not configured")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidTemplate is returned when a prompt template cannot be used.
	ErrInvalidTemplate = errors.New("invalid prompt template")

	// ErrUnknownTemplate is returned when a named template does not exist.
	ErrUnknownTemplate = errors.New("unknown prompt template")
)
