package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/generation"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-pro"

// ProviderName identifies this backend.
const ProviderName = "gemini"

// modelsAPI is the subset of *genai.Models used by the generator.
type modelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	models modelsAPI
	model  string
	gen    *genai.GenerateContentConfig
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator from the LLM configuration.
// It returns generation.ErrMissingCredential when no API key is configured.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY environment variable not found", generation.ErrMissingCredential)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, client.Models, cfg), nil
}

// newGenerator wires a generator around an existing models API.
func newGenerator(logger *slog.Logger, models modelsAPI, cfg config.LLMConfig) *GeminiGenerator {
	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &GeminiGenerator{
		logger: logger,
		models: models,
		model:  model,
		gen:    contentConfig(cfg),
	}
}

// contentConfig maps the configured temperature; zero keeps the model's own
// default. The output length is left to the model, which sizes full SRS
// documents better than a fixed cap.
func contentConfig(cfg config.LLMConfig) *genai.GenerateContentConfig {
	if cfg.Temperature <= 0 {
		return nil
	}
	return &genai.GenerateContentConfig{Temperature: genai.Ptr(cfg.Temperature)}
}

// Name implements generation.Generator.
func (g *GeminiGenerator) Name() string { return ProviderName }

// Model returns the Gemini model in use.
func (g *GeminiGenerator) Model() string { return g.model }

// Generate implements generation.Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, contents, g.gen)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"model", g.model,
		"response_length", len(text))

	return text, nil
}

// responseText joins the text parts of the first candidate. A response with
// no candidates or no text yields "".
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", nil
	}

	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", nil
	}
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("gemini: %w", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
