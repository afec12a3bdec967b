package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/planovo/planovo-api/internal/api/shared"
	"github.com/planovo/planovo-api/internal/domain"
	"github.com/planovo/planovo-api/internal/platform/logger"
	"github.com/planovo/planovo-api/internal/service/srs"
)

// SRSHandler serves SRS generation.
type SRSHandler struct {
	service srs.Generator
	logger  *slog.Logger
}

// NewSRSHandler creates a new SRSHandler.
func NewSRSHandler(service srs.Generator, logger *slog.Logger) *SRSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SRSHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "srs")),
	}
}

// GenerateSRS handles POST /api/srs/generate.
func (h *SRSHandler) GenerateSRS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.GenerationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid generation request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Blank-after-trim input is rejected by the service.
	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("generation request failed validation", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrMsgEmptyFeatureIdea)
		return
	}

	result, err := h.service.Generate(r.Context(), req.FeatureIdea)
	if err != nil {
		status := MapErrorToStatusCode(err)
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			shared.RespondWithError(w, r, status, validationErr.Error())
			return
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
