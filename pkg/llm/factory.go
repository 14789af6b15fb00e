package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

// NewThread constructs the thread for the configured provider. The
// system prompt and tool set are fixed for the lifetime of the thread.
func NewThread(ctx context.Context, cfg *config.Config, systemPrompt string, tools []tooltypes.Tool) (Thread, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderAnthropic, config.ProviderBedrock:
		return NewAnthropicThread(ctx, cfg, systemPrompt, tools)
	case config.ProviderOpenAI, config.ProviderOpenRouter, config.ProviderOllama:
		return NewOpenAIThread(cfg, systemPrompt, tools), nil
	case config.ProviderGoogle:
		return NewGoogleThread(ctx, cfg, systemPrompt, tools)
	default:
		return nil, errors.Errorf("unsupported provider: %q", cfg.Provider)
	}
}
