package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. server.port becomes PLANOVO_SERVER_PORT.
const EnvPrefix = "PLANOVO"

// legacyEnv lists unprefixed variable names still honored for a key.
// They are checked after the prefixed name.
var legacyEnv = map[string][]string{
	"server.port":               {"PORT"},
	"database.url":              {"DATABASE_URL"},
	"llm.gemini_api_key":        {"GEMINI_API_KEY"},
	"llm.openai_api_key":        {"OPENAI_API_KEY"},
	"llm.anthropic_api_key":     {"ANTHROPIC_API_KEY"},
	"clerk.webhook_secret":      {"CLERK_WEBHOOK_SECRET"},
	"auth.clerk_jwt_public_key": {"CLERK_JWT_KEY"},
}

// setDefaults registers a default for every key so that viper's Unmarshal
// sees environment overrides for all of them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{
		"http://localhost:3000",
		"https://planovo.vercel.app",
	})
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.anthropic_api_key", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.prompt_template", "ieee830")
	v.SetDefault("llm.prompt_templates_file", "")
	v.SetDefault("llm.request_timeout_seconds", 120)
	v.SetDefault("llm.max_output_tokens", 0)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_retries", 0)

	v.SetDefault("clerk.webhook_secret", "")

	v.SetDefault("auth.clerk_jwt_public_key", "")
	v.SetDefault("auth.authorized_parties", []string{})
}

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first without overriding
// variables that are already set. Environment variables take precedence over
// values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		bind := append([]string{key, prefixed}, names...)
		if err := v.BindEnv(bind...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
