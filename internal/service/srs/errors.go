package srs

import (
	"errors"
	"fmt"
)

// EmptyResponseError reports a backend call that succeeded but produced no
// text.
type EmptyResponseError struct {
	Backend string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s returned empty response.", displayName(e.Backend))
}

// GenerationError wraps any failure of the backend call, including
// timeouts. Its message carries the upstream error text.
type GenerationError struct {
	Backend string
	Err     error
}

func (e *GenerationError) Error() string {
	return "SRS generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsEmptyResponse reports whether err is an *EmptyResponseError.
func IsEmptyResponse(err error) bool {
	var target *EmptyResponseError
	return errors.As(err, &target)
}

// IsGenerationError reports whether err is a *GenerationError.
func IsGenerationError(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}

func displayName(backend string) string {
	switch backend {
	case "gemini":
		return "Gemini AI"
	case "openai":
		return "OpenAI"
	case "anthropic":
		return "Anthropic"
	case "lorem":
		return "Lorem"
	case "":
		return "Generation backend"
	default:
		return backend
	}
}
