package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

func testConfig(provider string) *config.Config {
	return &config.Config{
		Provider:  provider,
		APIKey:    "test-key",
		Model:     "test-model",
		MaxTokens: 1024,
	}
}

func TestNewThreadOpenAICompatible(t *testing.T) {
	for _, provider := range []string{config.ProviderOpenAI, config.ProviderOpenRouter, config.ProviderOllama} {
		thread, err := NewThread(context.Background(), testConfig(provider), "system", nil)
		require.NoError(t, err, provider)
		assert.Equal(t, provider, thread.Provider())
		assert.IsType(t, &OpenAIThread{}, thread)
	}
}

func TestNewThreadAnthropic(t *testing.T) {
	thread, err := NewThread(context.Background(), testConfig(config.ProviderAnthropic), "system", nil)
	require.NoError(t, err)
	assert.IsType(t, &AnthropicThread{}, thread)
}

func TestNewThreadUnsupportedProvider(t *testing.T) {
	_, err := NewThread(context.Background(), testConfig("watson"), "system", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestOpenAIThreadStartsWithSystemMessage(t *testing.T) {
	thread := NewOpenAIThread(testConfig(config.ProviderOpenAI), "you are a helpful agent", nil)

	require.Len(t, thread.messages, 1)
	assert.Equal(t, "system", thread.messages[0].Role)
	assert.Equal(t, "you are a helpful agent", thread.messages[0].Content)
}

func TestToOpenAITools(t *testing.T) {
	var noTools []tooltypes.Tool
	assert.Empty(t, toOpenAITools(noTools))
}
