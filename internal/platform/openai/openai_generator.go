// Package openai implements generation.Generator on the OpenAI chat
// completions API (or any compatible endpoint via openai_base_url).
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/generation"
	openaisdk "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gpt-4.1"

// ProviderName identifies this backend.
const ProviderName = "openai"

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openaisdk.ChatCompletionRequest) (openaisdk.ChatCompletionResponse, error)
}

// Generator sends prompts as a single user message.
type Generator struct {
	logger      *slog.Logger
	client      chatCompleter
	model       string
	maxTokens   int
	temperature float32
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates an OpenAI generator. Transport-level retries follow
// cfg.MaxRetries; zero disables them.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY environment variable not found", generation.ErrMissingCredential)
	}

	clientCfg := openaisdk.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	clientCfg.HTTPClient = newHTTPClient(logger, cfg.MaxRetries)

	return newGenerator(logger, openaisdk.NewClientWithConfig(clientCfg), cfg), nil
}

// newHTTPClient returns a retrying client with exponential backoff.
func newHTTPClient(logger *slog.Logger, maxRetries int) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.RetryWaitMin = 1 * time.Second
	rc.RetryWaitMax = 5 * time.Second
	rc.CheckRetry = retryablehttp.DefaultRetryPolicy
	rc.Logger = leveledLogger{logger.With("component", "openai_http")}
	return rc.StandardClient()
}

func newGenerator(logger *slog.Logger, client chatCompleter, cfg config.LLMConfig) *Generator {
	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		logger:      logger,
		client:      client,
		model:       model,
		maxTokens:   cfg.MaxOutputTokens,
		temperature: cfg.Temperature,
	}
}

// Name implements generation.Generator.
func (g *Generator) Name() string { return ProviderName }

// Generate implements generation.Generator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openaisdk.ChatCompletionRequest{
		Model: g.model,
		Messages: []openaisdk.ChatCompletionMessage{
			{Role: openaisdk.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	g.logger.DebugContext(ctx, "Making OpenAI API call", "model", g.model, "prompt_length", len(prompt))

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openaisdk.FinishReasonContentFilter && choice.Message.Content == "" {
		return "", fmt.Errorf("openai: %w", generation.ErrContentBlocked)
	}

	g.logger.DebugContext(ctx, "OpenAI API call successful",
		"model", resp.Model,
		"completion_tokens", resp.Usage.CompletionTokens)

	return choice.Message.Content, nil
}

// leveledLogger adapts slog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	l *slog.Logger
}

func (a leveledLogger) Error(msg string, kv ...interface{}) { a.l.Error(msg, kv...) }
func (a leveledLogger) Info(msg string, kv ...interface{})  { a.l.Debug(msg, kv...) }
func (a leveledLogger) Debug(msg string, kv ...interface{}) { a.l.Debug(msg, kv...) }
func (a leveledLogger) Warn(msg string, kv ...interface{})  { a.l.Warn(msg, kv...) }
