// Package config loads application settings from config files and
// environment variables using viper. One explicit Config value is
// produced at startup and handed down via dependency injection; nothing
// else in the application reads viper directly.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Supported LLM provider names
const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderOllama     = "ollama"
	ProviderAnthropic  = "anthropic"
	ProviderBedrock    = "bedrock"
	ProviderGoogle     = "google"
)

// Config holds all application settings
type Config struct {
	// SkillsDir is the root directory scanned for skill definitions
	SkillsDir string `mapstructure:"skills_dir"`

	// Provider selects the LLM backend
	Provider string `mapstructure:"provider"`
	// APIKey authenticates against the provider (required for
	// openai/openrouter/anthropic/google)
	APIKey string `mapstructure:"api_key"`
	// Model is the provider-specific model identifier
	Model string `mapstructure:"model"`
	// BaseURL overrides the API endpoint for OpenAI-compatible
	// providers; each provider falls back to its canonical endpoint
	// when empty
	BaseURL string `mapstructure:"base_url"`
	// MaxTokens caps the response length per completion
	MaxTokens int `mapstructure:"max_tokens"`

	// OpenRouter attribution headers (optional)
	OpenRouterAppURL   string `mapstructure:"openrouter_app_url"`
	OpenRouterAppTitle string `mapstructure:"openrouter_app_title"`

	// AWS settings, used when Provider is "bedrock"
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("skills_dir", "skills")
	v.SetDefault("provider", ProviderOpenRouter)
	v.SetDefault("model", "anthropic/claude-sonnet-4.5")
	v.SetDefault("max_tokens", 4096)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "fmt")
}

// Load reads settings from an optional config.yaml (current directory or
// ~/.skillagent) and SKILLAGENT_-prefixed environment variables.
// Provider requirements are checked separately via Validate, so commands
// that never talk to an LLM (e.g. "skill list") work without credentials.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.skillagent")

	v.SetEnvPrefix("SKILLAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return cfg, nil
}

// Validate enforces per-provider requirements
func (c *Config) Validate() error {
	provider := strings.ToLower(c.Provider)

	switch provider {
	case ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic, ProviderGoogle:
		if c.APIKey == "" {
			return errors.Errorf("api_key is required when provider is %q; set SKILLAGENT_API_KEY", provider)
		}
	case ProviderOllama:
		// Ollama needs no key; base URL defaults to the local daemon
	case ProviderBedrock:
		if c.AWSRegion == "" {
			return errors.New("aws_region is required when provider is \"bedrock\"; set SKILLAGENT_AWS_REGION")
		}
		if !strings.Contains(c.Model, "anthropic.") {
			return errors.Errorf("model %q does not look like a Bedrock Anthropic model id (e.g. anthropic.claude-3-5-sonnet-20241022-v2:0)", c.Model)
		}
	default:
		return errors.Errorf("unsupported provider: %q", c.Provider)
	}

	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		return errors.New("max_tokens must be positive")
	}

	return nil
}
