package api

import (
	"errors"
	"net/http"

	"github.com/planovo/planovo-api/internal/domain"
	"github.com/planovo/planovo-api/internal/redact"
	"github.com/planovo/planovo-api/internal/service"
	"github.com/planovo/planovo-api/internal/service/auth"
	"github.com/planovo/planovo-api/internal/service/srs"
	"github.com/planovo/planovo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type.
func MapErrorToStatusCode(err error) int {
	var (
		validationErr *domain.ValidationError
		emptyErr      *srs.EmptyResponseError
		generationErr *srs.GenerationError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.As(err, &emptyErr),
		errors.As(err, &generationErr):
		return http.StatusInternalServerError

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrUnauthorizedParty):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, store.ErrUnavailable),
		errors.Is(err, service.ErrUserStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the detail string sent to the client.
// Generation failures pass the upstream message through, with credentials
// removed; everything unrecognized collapses to a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		validationErr *domain.ValidationError
		emptyErr      *srs.EmptyResponseError
		generationErr *srs.GenerationError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.As(err, &emptyErr):
		return emptyErr.Error()

	case errors.As(err, &generationErr):
		return redact.Secrets(generationErr.Error())

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrUnauthorizedParty):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrUnavailable),
		errors.Is(err, service.ErrUserStoreUnavailable):
		return "Database not configured"

	default:
		return "An unexpected error occurred"
	}
}
