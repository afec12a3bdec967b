package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/planovo/planovo-api/internal/api/shared"
	"github.com/planovo/planovo-api/internal/platform/logger"
	"github.com/planovo/planovo-api/internal/redact"
	"github.com/planovo/planovo-api/internal/store"
)

// Static service identity reported by the probes.
const (
	ServiceName    = "PlaNovo API"
	ServiceVersion = "1.0.0"
)

const dbTestTimeout = 5 * time.Second

// HealthHandler serves the liveness probes and the database check.
type HealthHandler struct {
	db store.HealthChecker
}

// NewHealthHandler creates a HealthHandler. db may be nil when no database
// is configured.
func NewHealthHandler(db store.HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: ServiceName + " is running",
	})
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: ServiceVersion,
	})
}

// DBTest handles GET /db-test. Failures are reported in the body with
// status 200.
func (h *HealthHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if h.db == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, DBTestResponse{
			Status:  "error",
			Message: "Database connection failed: " + store.ErrUnavailable.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTestTimeout)
	defer cancel()

	result, err := h.db.Ping(ctx)
	if err != nil {
		redacted := redact.Error(err)
		log.Error("database check failed", slog.String("error", redacted))
		shared.RespondWithJSON(w, r, http.StatusOK, DBTestResponse{
			Status:  "error",
			Message: "Database connection failed: " + redacted,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DBTestResponse{
		Status:     "ok",
		Message:    "Database connection successful",
		TestResult: &result,
	})
}
