// Package webhook receives Clerk user events delivered through Svix and
// mirrors them into the local users table.
package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/planovo/planovo-api/internal/api/shared"
	"github.com/planovo/planovo-api/internal/metrics"
	"github.com/planovo/planovo-api/internal/platform/logger"
	"github.com/planovo/planovo-api/internal/redact"
	"github.com/planovo/planovo-api/internal/service"
	svix "github.com/svix/svix-webhooks/go"
)

// maxPayloadBytes caps a webhook body.
const maxPayloadBytes = 1 << 20

// Result labels for the webhook metric.
const (
	resultProcessed = "processed"
	resultIgnored   = "ignored"
	resultRejected  = "rejected"
	resultFailed    = "failed"
)

// Verifier checks the Svix signature headers of a delivery.
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

// Response is the body of a handled delivery.
type Response struct {
	Status    string `json:"status"`
	EventType string `json:"event_type"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves POST /api/webhooks/clerk.
type Handler struct {
	verifier Verifier
	users    service.UserService
	logger   *slog.Logger
}

// NewHandler builds a handler verifying with the Svix signing secret
// (whsec_...). An empty secret yields a handler that answers 503.
func NewHandler(secret string, users service.UserService, logger *slog.Logger) (*Handler, error) {
	var verifier Verifier
	if secret != "" {
		wh, err := svix.NewWebhook(secret)
		if err != nil {
			return nil, err
		}
		verifier = wh
	}
	return newHandler(verifier, users, logger), nil
}

func newHandler(verifier Verifier, users service.UserService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		verifier: verifier,
		users:    users,
		logger:   logger.With(slog.String("handler", "clerk_webhook")),
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithJSON(w, r, status, errorResponse{Error: message})
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if h.verifier == nil {
		log.Error("clerk webhook received but no signing secret is configured")
		respondError(w, r, http.StatusServiceUnavailable, "Webhook receiver not configured")
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := h.verifier.Verify(payload, r.Header); err != nil {
		metrics.IncWebhookEvent("unknown", resultRejected)
		log.Warn("clerk webhook signature verification failed",
			slog.String("svix_id", r.Header.Get("svix-id")),
			slog.String("error", err.Error()))
		respondError(w, r, http.StatusBadRequest, "Invalid webhook signature")
		return
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil || event.Type == "" {
		metrics.IncWebhookEvent("unknown", resultRejected)
		respondError(w, r, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	log = log.With(slog.String("event_type", event.Type), slog.String("svix_id", r.Header.Get("svix-id")))

	handled, err := h.dispatch(r, event)
	if err != nil {
		metrics.IncWebhookEvent(event.Type, resultFailed)
		status := http.StatusInternalServerError
		message := "Failed to process webhook"
		switch {
		case errors.Is(err, service.ErrUserStoreUnavailable):
			status = http.StatusServiceUnavailable
			message = "Database not configured"
		case errors.Is(err, errInvalidUser):
			status = http.StatusBadRequest
			message = "Invalid user payload"
		}
		log.Error("clerk webhook processing failed", slog.String("error", redact.Error(err)))
		respondError(w, r, status, message)
		return
	}

	if handled {
		metrics.IncWebhookEvent(event.Type, resultProcessed)
		log.Info("clerk webhook processed")
	} else {
		metrics.IncWebhookEvent(event.Type, resultIgnored)
		log.Debug("clerk webhook event ignored")
	}

	shared.RespondWithJSON(w, r, http.StatusOK, Response{Status: "ok", EventType: event.Type})
}

var errInvalidUser = errors.New("invalid user payload")

// dispatch reports whether the event type is one the receiver acts on.
func (h *Handler) dispatch(r *http.Request, event Event) (bool, error) {
	switch event.Type {
	case EventUserCreated, EventUserUpdated:
		var data UserData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return true, errors.Join(errInvalidUser, err)
		}
		user, err := data.ToUser()
		if err != nil {
			return true, errors.Join(errInvalidUser, err)
		}
		return true, h.users.SyncUser(r.Context(), user)

	case EventUserDeleted:
		var data UserData
		if err := json.Unmarshal(event.Data, &data); err != nil || data.ID == "" {
			return true, errors.Join(errInvalidUser, err)
		}
		return true, h.users.DeleteUser(r.Context(), data.ID)

	default:
		return false, nil
	}
}
