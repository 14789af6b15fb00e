package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "skills", cfg.SkillsDir)
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "anthropic/claude-sonnet-4.5", cfg.Model)
	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SKILLAGENT_PROVIDER", "ollama")
	t.Setenv("SKILLAGENT_MODEL", "qwen2.5:14b")
	t.Setenv("SKILLAGENT_SKILLS_DIR", "/opt/skills")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "qwen2.5:14b", cfg.Model)
	assert.Equal(t, "/opt/skills", cfg.SkillsDir)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	for _, provider := range []string{ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic, ProviderGoogle} {
		cfg := &Config{Provider: provider, Model: "some-model", MaxTokens: 1024}
		err := cfg.Validate()
		require.Error(t, err, provider)
		assert.Contains(t, err.Error(), "api_key is required")
	}
}

func TestValidateOllamaNeedsNoKey(t *testing.T) {
	cfg := &Config{Provider: ProviderOllama, Model: "llama3.3", MaxTokens: 1024}
	assert.NoError(t, cfg.Validate())
}

func TestValidateBedrock(t *testing.T) {
	cfg := &Config{Provider: ProviderBedrock, Model: "anthropic.claude-3-5-sonnet-20241022-v2:0", MaxTokens: 1024}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aws_region is required")

	cfg.AWSRegion = "ap-southeast-1"
	assert.NoError(t, cfg.Validate())

	cfg.Model = "llama3.3"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bedrock Anthropic model id")
}

func TestValidateUnsupportedProvider(t *testing.T) {
	cfg := &Config{Provider: "watson", Model: "m", MaxTokens: 1024}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestValidateMaxTokens(t *testing.T) {
	cfg := &Config{Provider: ProviderOllama, Model: "llama3.3", MaxTokens: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}
