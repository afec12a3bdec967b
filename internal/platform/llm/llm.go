// Package llm selects the generation backend named by the configuration.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/generation"
	"github.com/planovo/planovo-api/internal/platform/anthropic"
	"github.com/planovo/planovo-api/internal/platform/gemini"
	"github.com/planovo/planovo-api/internal/platform/lorem"
	"github.com/planovo/planovo-api/internal/platform/openai"
)

// Provider names accepted in llm.provider.
const (
	ProviderGemini    = gemini.ProviderName
	ProviderOpenAI    = openai.ProviderName
	ProviderAnthropic = anthropic.ProviderName
	ProviderLorem     = lorem.ProviderName
)

// NewGenerator builds the backend for cfg.Provider.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	var (
		g   generation.Generator
		err error
	)
	switch cfg.Provider {
	case ProviderGemini, "":
		g, err = asGenerator(gemini.NewGeminiGenerator(ctx, logger, cfg))
	case ProviderOpenAI:
		g, err = asGenerator(openai.NewGenerator(logger, cfg))
	case ProviderAnthropic:
		g, err = asGenerator(anthropic.NewGenerator(logger, cfg))
	case ProviderLorem:
		g = lorem.NewGenerator(0)
	default:
		err = fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// asGenerator keeps a nil concrete pointer from becoming a non-nil interface.
func asGenerator[T generation.Generator](g T, err error) (generation.Generator, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

// NewGeneratorOrUnavailable is NewGenerator for server startup: a backend
// that cannot be built is logged and replaced by generation.Unavailable.
func NewGeneratorOrUnavailable(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) generation.Generator {
	g, err := NewGenerator(ctx, logger, cfg)
	if err != nil {
		logger.ErrorContext(ctx, "generation backend unavailable",
			"provider", cfg.Provider,
			"error", err)
		return generation.Unavailable{Provider: cfg.Provider, Reason: err}
	}
	logger.InfoContext(ctx, "generation backend ready", "provider", g.Name())
	return g
}
