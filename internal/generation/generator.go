package generation

import (
	"context"
	"fmt"
)

// Generator sends a fully composed prompt to a generative-text backend and
// returns the generated text verbatim.
//
// Implementations block until the complete response is available. A response
// without any text is returned as "" with a nil error so callers can tell an
// empty answer apart from a failed call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend in logs, metrics and error messages.
	Name() string
}

// Unavailable is a Generator that always fails. It stands in for a provider
// whose configuration failed at startup, so the process can keep serving its
// other endpoints.
type Unavailable struct {
	Provider string
	Reason   error
}

// Generate implements Generator.
func (u Unavailable) Generate(context.Context, string) (string, error) {
	if u.Reason != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, u.Reason)
	}
	return "", ErrUnavailable
}

// Name implements Generator.
func (u Unavailable) Name() string {
	if u.Provider == "" {
		return "unavailable"
	}
	return u.Provider
}
