package llm

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/tools"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	ollamaBaseURL     = "http://localhost:11434/v1"
)

// OpenAIThread talks to OpenAI and OpenAI-compatible backends
// (OpenRouter, Ollama) via the chat completions API.
type OpenAIThread struct {
	cfg      *config.Config
	client   *openai.Client
	system   string
	tools    []tooltypes.Tool
	messages []openai.ChatCompletionMessage
}

// headerTransport injects OpenRouter attribution headers into every request
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewOpenAIThread creates a thread for the "openai", "openrouter", or
// "ollama" provider.
func NewOpenAIThread(cfg *config.Config, systemPrompt string, availableTools []tooltypes.Tool) *OpenAIThread {
	var clientConfig openai.ClientConfig

	switch cfg.Provider {
	case config.ProviderOpenRouter:
		clientConfig = openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = openRouterBaseURL
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		headers := map[string]string{}
		if cfg.OpenRouterAppURL != "" {
			headers["HTTP-Referer"] = cfg.OpenRouterAppURL
		}
		if cfg.OpenRouterAppTitle != "" {
			headers["X-Title"] = cfg.OpenRouterAppTitle
		}
		if len(headers) > 0 {
			clientConfig.HTTPClient = &http.Client{
				Transport: &headerTransport{headers: headers},
			}
		}
	case config.ProviderOllama:
		// Ollama requires an API key header but ignores its value
		clientConfig = openai.DefaultConfig("ollama")
		clientConfig.BaseURL = ollamaBaseURL
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
	default:
		clientConfig = openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
	}

	return &OpenAIThread{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
		system: systemPrompt,
		tools:  availableTools,
		messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		},
	}
}

// Provider returns the configured backend name
func (t *OpenAIThread) Provider() string {
	return t.cfg.Provider
}

// SendMessage sends a user message and loops until the model stops
// requesting tools.
func (t *OpenAIThread) SendMessage(ctx context.Context, message string, handler MessageHandler) (string, error) {
	t.messages = append(t.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	var finalOutput string
	for {
		response, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     t.cfg.Model,
			Messages:  t.messages,
			Tools:     toOpenAITools(t.tools),
			MaxTokens: t.cfg.MaxTokens,
		})
		if err != nil {
			return "", errors.Wrapf(err, "failed to send message to %s", t.cfg.Provider)
		}
		if len(response.Choices) == 0 {
			return "", errors.New("response contained no choices")
		}

		msg := response.Choices[0].Message
		t.messages = append(t.messages, msg)

		if msg.Content != "" {
			handler.HandleText(msg.Content)
			finalOutput = msg.Content
		}

		if len(msg.ToolCalls) == 0 {
			break
		}

		for _, toolCall := range msg.ToolCalls {
			if toolCall.Type != openai.ToolTypeFunction {
				continue
			}
			handler.HandleToolUse(toolCall.Function.Name, toolCall.Function.Arguments)

			logger.G(ctx).WithField("tool", toolCall.Function.Name).Debug("executing tool call")
			output := tools.RunTool(ctx, t.tools, toolCall.Function.Name, toolCall.Function.Arguments)
			handler.HandleToolResult(toolCall.Function.Name, output.AssistantFacing())

			t.messages = append(t.messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    output.AssistantFacing(),
				ToolCallID: toolCall.ID,
			})
		}
	}

	handler.HandleDone()
	return finalOutput, nil
}

func toOpenAITools(availableTools []tooltypes.Tool) []openai.Tool {
	openaiTools := make([]openai.Tool, len(availableTools))
	for i, tool := range availableTools {
		openaiTools[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.GenerateSchema(),
			},
		}
	}
	return openaiTools
}
