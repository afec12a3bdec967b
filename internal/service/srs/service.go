// Package srs turns a feature idea into a Software Requirements
// Specification by rendering the configured prompt template and sending it
// to the generation backend.
package srs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/planovo/planovo-api/internal/domain"
	"github.com/planovo/planovo-api/internal/generation"
	"github.com/planovo/planovo-api/internal/metrics"
	"github.com/planovo/planovo-api/internal/platform/logger"
)

// DefaultTimeout bounds a backend call when none is configured.
const DefaultTimeout = 120 * time.Second

// Generator is the operation exposed to the HTTP and CLI layers.
type Generator interface {
	Generate(ctx context.Context, featureIdea string) (*domain.GenerationResult, error)
}

// Service implements Generator. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	backend  generation.Generator
	template *generation.PromptTemplate
	timeout  time.Duration
	logger   *slog.Logger
}

var _ Generator = (*Service)(nil)

// NewService creates a Service. A non-positive timeout selects
// DefaultTimeout.
func NewService(
	backend generation.Generator,
	template *generation.PromptTemplate,
	timeout time.Duration,
	logger *slog.Logger,
) (*Service, error) {
	if backend == nil {
		return nil, errors.New("generation backend cannot be nil")
	}
	if template == nil {
		return nil, errors.New("prompt template cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		backend:  backend,
		template: template,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "srs_service")),
	}, nil
}

// Generate validates the idea, renders the prompt and waits for the full
// backend response.
//
// Errors: *domain.ValidationError for blank input, *EmptyResponseError when
// the backend returns no text, *GenerationError for every other failure.
func (s *Service) Generate(ctx context.Context, featureIdea string) (*domain.GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	backend := s.backend.Name()

	idea, err := domain.GenerationRequest{FeatureIdea: featureIdea}.Normalize()
	if err != nil {
		metrics.IncGeneration(backend, metrics.OutcomeValidationError)
		log.Debug("rejected empty feature idea")
		return nil, err
	}

	prompt, err := s.template.Render(idea)
	if err != nil {
		metrics.IncGeneration(backend, metrics.OutcomeGenerationError)
		log.Error("failed to render prompt template",
			slog.String("template", s.template.Name()),
			slog.String("error", err.Error()))
		return nil, &GenerationError{Backend: backend, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log.Info("generating SRS document",
		slog.String("backend", backend),
		slog.String("template", s.template.Name()),
		slog.Int("feature_idea_length", len(idea)))

	start := time.Now()
	text, err := s.backend.Generate(callCtx, prompt)
	elapsed := time.Since(start)
	metrics.ObserveGenerationDuration(backend, elapsed)

	if err != nil {
		metrics.IncGeneration(backend, metrics.OutcomeGenerationError)
		log.Error("SRS generation failed",
			slog.String("backend", backend),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return nil, &GenerationError{Backend: backend, Err: err}
	}

	if text == "" {
		metrics.IncGeneration(backend, metrics.OutcomeEmptyResponse)
		log.Warn("generation backend returned empty response",
			slog.String("backend", backend),
			slog.Duration("elapsed", elapsed))
		return nil, &EmptyResponseError{Backend: backend}
	}

	metrics.IncGeneration(backend, metrics.OutcomeSuccess)
	log.Info("SRS document generated",
		slog.String("backend", backend),
		slog.Duration("elapsed", elapsed),
		slog.Int("document_length", len(text)))

	return domain.NewGenerationResult(text, idea), nil
}
