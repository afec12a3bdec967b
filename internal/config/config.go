package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Clerk    ClerkConfig    `mapstructure:"clerk"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL leaves the server running without a database; the
// connectivity check and the webhook receiver then report it as unavailable.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
//
// API keys are deliberately not required here: a missing credential is
// reported when the generator is built and leaves generation unavailable
// instead of preventing startup.
type LLMConfig struct {
	Provider        string `mapstructure:"provider" validate:"required,oneof=gemini openai anthropic lorem"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	OpenAIBaseURL   string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	// ModelName overrides the provider's default model when set.
	ModelName string `mapstructure:"model_name"`

	PromptTemplate      string `mapstructure:"prompt_template" validate:"required"`
	PromptTemplatesFile string `mapstructure:"prompt_templates_file"`

	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" validate:"gte=1"`
	MaxOutputTokens       int     `mapstructure:"max_output_tokens" validate:"gte=0"`
	Temperature           float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	// MaxRetries is applied at the HTTP transport of providers that support it.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// ClerkConfig contains settings for the Clerk identity provider webhooks.
type ClerkConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// AuthConfig contains optional session authentication settings. When
// ClerkJWTPublicKey is empty the generation endpoint is public.
type AuthConfig struct {
	ClerkJWTPublicKey string   `mapstructure:"clerk_jwt_public_key"`
	AuthorizedParties []string `mapstructure:"authorized_parties"`
}
