package llm

import (
	"context"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/tools"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

// AnthropicThread talks to the Anthropic API directly or through AWS
// Bedrock, depending on the configured provider.
type AnthropicThread struct {
	cfg      *config.Config
	client   anthropic.Client
	system   string
	tools    []tooltypes.Tool
	messages []anthropic.MessageParam
}

// NewAnthropicThread creates a thread for the "anthropic" or "bedrock"
// provider. For Bedrock, credentials come from the standard AWS
// configuration chain; region and profile from the app config are
// exported so the chain picks them up.
func NewAnthropicThread(ctx context.Context, cfg *config.Config, systemPrompt string, availableTools []tooltypes.Tool) (*AnthropicThread, error) {
	var opts []option.RequestOption
	if cfg.Provider == config.ProviderBedrock {
		if cfg.AWSRegion != "" {
			if err := os.Setenv("AWS_REGION", cfg.AWSRegion); err != nil {
				return nil, errors.Wrap(err, "failed to set AWS_REGION")
			}
		}
		if cfg.AWSProfile != "" {
			if err := os.Setenv("AWS_PROFILE", cfg.AWSProfile); err != nil {
				return nil, errors.Wrap(err, "failed to set AWS_PROFILE")
			}
		}
		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx))
	} else {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	return &AnthropicThread{
		cfg:    cfg,
		client: anthropic.NewClient(opts...),
		system: systemPrompt,
		tools:  availableTools,
	}, nil
}

// Provider returns the configured backend name
func (t *AnthropicThread) Provider() string {
	return t.cfg.Provider
}

// SendMessage sends a user message and loops until the model stops
// requesting tools.
func (t *AnthropicThread) SendMessage(ctx context.Context, message string, handler MessageHandler) (string, error) {
	t.messages = append(t.messages, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))

	var finalOutput string
	for {
		response, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
			MaxTokens: int64(t.cfg.MaxTokens),
			Model:     anthropic.Model(t.cfg.Model),
			System: []anthropic.TextBlockParam{
				{Text: t.system},
			},
			Messages: t.messages,
			Tools:    toAnthropicTools(t.tools),
		})
		if err != nil {
			return "", errors.Wrap(err, "failed to send message to Anthropic")
		}

		t.messages = append(t.messages, response.ToParam())

		toolUseCount := 0
		for _, block := range response.Content {
			switch variant := block.AsAny().(type) {
			case anthropic.TextBlock:
				handler.HandleText(variant.Text)
				finalOutput = variant.Text
			case anthropic.ToolUseBlock:
				toolUseCount++
				input := variant.JSON.Input.Raw()
				handler.HandleToolUse(block.Name, input)

				logger.G(ctx).WithField("tool", block.Name).Debug("executing tool call")
				output := tools.RunTool(ctx, t.tools, block.Name, input)
				handler.HandleToolResult(block.Name, output.AssistantFacing())

				t.messages = append(t.messages, anthropic.NewUserMessage(
					anthropic.NewToolResultBlock(block.ID, output.AssistantFacing(), output.IsError()),
				))
			}
		}

		if toolUseCount == 0 {
			break
		}
	}

	handler.HandleDone()
	return finalOutput, nil
}

func toAnthropicTools(availableTools []tooltypes.Tool) []anthropic.ToolUnionParam {
	anthropicTools := make([]anthropic.ToolUnionParam, len(availableTools))
	for i, tool := range availableTools {
		anthropicTools[i] = anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name(),
				Description: anthropic.String(tool.Description()),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: tool.GenerateSchema().Properties,
				},
			},
		}
	}
	return anthropicTools
}
