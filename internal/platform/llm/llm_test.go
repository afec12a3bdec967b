package llm

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestNewGeneratorSelectsProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LLMConfig
		want string
	}{
		{"lorem", config.LLMConfig{Provider: "lorem"}, "lorem"},
		{"openai", config.LLMConfig{Provider: "openai", OpenAIAPIKey: "sk-test"}, "openai"},
		{"anthropic", config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "sk-ant"}, "anthropic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(context.Background(), testLogger(), tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Name())
		})
	}
}

func TestNewGeneratorMissingCredential(t *testing.T) {
	for _, provider := range []string{"gemini", "openai", "anthropic"} {
		t.Run(provider, func(t *testing.T) {
			_, err := NewGenerator(context.Background(), testLogger(), config.LLMConfig{Provider: provider})
			assert.ErrorIs(t, err, generation.ErrMissingCredential)
		})
	}
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, err := NewGenerator(context.Background(), testLogger(), config.LLMConfig{Provider: "bard"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewGeneratorOrUnavailable(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	g := NewGeneratorOrUnavailable(context.Background(), logger, config.LLMConfig{Provider: "gemini"})

	assert.Equal(t, "gemini", g.Name())
	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, generation.ErrUnavailable)
	assert.Contains(t, buf.String(), "generation backend unavailable")
}
