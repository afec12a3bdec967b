// Package anthropic implements generation.Generator on Anthropic's Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/generation"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "claude-sonnet-4-5"

// DefaultMaxTokens bounds the response when max_output_tokens is unset; the
// Messages API requires a value.
const DefaultMaxTokens = 8192

// ProviderName identifies this backend.
const ProviderName = "anthropic"

type messagesAPI interface {
	New(ctx context.Context, body anthropicsdk.MessageNewParams, opts ...option.RequestOption) (*anthropicsdk.Message, error)
}

// Generator sends prompts as a single user message.
type Generator struct {
	logger    *slog.Logger
	messages  messagesAPI
	model     string
	maxTokens int64
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates an Anthropic generator.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY environment variable not found", generation.ErrMissingCredential)
	}

	client := anthropicsdk.NewClient(
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	)

	return newGenerator(logger, &client.Messages, cfg), nil
}

func newGenerator(logger *slog.Logger, messages messagesAPI, cfg config.LLMConfig) *Generator {
	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}
	maxTokens := int64(cfg.MaxOutputTokens)
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Generator{logger: logger, messages: messages, model: model, maxTokens: maxTokens}
}

// Name implements generation.Generator.
func (g *Generator) Name() string { return ProviderName }

// Generate implements generation.Generator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	params := anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
	}

	g.logger.DebugContext(ctx, "Making Anthropic API call", "model", g.model, "prompt_length", len(prompt))

	msg, err := g.messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	if msg == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	g.logger.DebugContext(ctx, "Anthropic API call successful",
		"model", string(msg.Model),
		"stop_reason", string(msg.StopReason),
		"output_tokens", msg.Usage.OutputTokens)

	return sb.String(), nil
}
