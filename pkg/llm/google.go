package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/tools"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

// GoogleThread talks to the Gemini API via the genai SDK
type GoogleThread struct {
	cfg      *config.Config
	client   *genai.Client
	system   string
	tools    []tooltypes.Tool
	messages []*genai.Content
}

// NewGoogleThread creates a thread for the "google" provider
func NewGoogleThread(ctx context.Context, cfg *config.Config, systemPrompt string, availableTools []tooltypes.Tool) (*GoogleThread, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google GenAI client")
	}

	return &GoogleThread{
		cfg:    cfg,
		client: client,
		system: systemPrompt,
		tools:  availableTools,
	}, nil
}

// Provider returns the configured backend name
func (t *GoogleThread) Provider() string {
	return t.cfg.Provider
}

// SendMessage sends a user message and loops until the model stops
// requesting tools.
func (t *GoogleThread) SendMessage(ctx context.Context, message string, handler MessageHandler) (string, error) {
	t.messages = append(t.messages, genai.NewContentFromParts(
		[]*genai.Part{genai.NewPartFromText(message)}, genai.RoleUser))

	generateConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(t.cfg.MaxTokens),
		Tools:           toGoogleTools(t.tools),
		SystemInstruction: genai.NewContentFromParts(
			[]*genai.Part{genai.NewPartFromText(t.system)}, genai.RoleUser),
	}

	var finalOutput string
	for {
		response, err := t.client.Models.GenerateContent(ctx, t.cfg.Model, t.messages, generateConfig)
		if err != nil {
			return "", errors.Wrap(err, "failed to send message to Google GenAI")
		}
		if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
			return "", errors.New("response contained no candidates")
		}

		content := response.Candidates[0].Content
		t.messages = append(t.messages, content)

		var toolResultParts []*genai.Part
		for _, part := range content.Parts {
			if part.Text != "" {
				handler.HandleText(part.Text)
				finalOutput = part.Text
			}
			if part.FunctionCall == nil {
				continue
			}

			argsJSON, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				logger.G(ctx).WithError(err).WithField("tool", part.FunctionCall.Name).Error("failed to marshal tool arguments")
				continue
			}

			handler.HandleToolUse(part.FunctionCall.Name, string(argsJSON))
			output := tools.RunTool(ctx, t.tools, part.FunctionCall.Name, string(argsJSON))
			handler.HandleToolResult(part.FunctionCall.Name, output.AssistantFacing())

			toolResultParts = append(toolResultParts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name: part.FunctionCall.Name,
					Response: map[string]any{
						"result": output.AssistantFacing(),
						"error":  output.IsError(),
					},
				},
			})
		}

		if len(toolResultParts) == 0 {
			break
		}
		// all function responses for a turn must land in one message
		t.messages = append(t.messages, genai.NewContentFromParts(toolResultParts, genai.RoleUser))
	}

	handler.HandleDone()
	return finalOutput, nil
}

// toGoogleTools groups all function declarations under a single Tool,
// which is what the Gemini API expects.
func toGoogleTools(availableTools []tooltypes.Tool) []*genai.Tool {
	if len(availableTools) == 0 {
		return nil
	}

	var declarations []*genai.FunctionDeclaration
	for _, tool := range availableTools {
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  toGoogleSchema(tool.GenerateSchema()),
		})
	}

	return []*genai.Tool{{FunctionDeclarations: declarations}}
}

func toGoogleSchema(schema *jsonschema.Schema) *genai.Schema {
	googleSchema := &genai.Schema{
		Type: toGoogleSchemaType(schema.Type),
	}

	if schema.Description != "" {
		googleSchema.Description = schema.Description
	}

	if schema.Properties != nil {
		googleSchema.Properties = make(map[string]*genai.Schema)
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			googleSchema.Properties[pair.Key] = toGoogleSchema(pair.Value)
		}
	}

	if len(schema.Required) > 0 {
		googleSchema.Required = schema.Required
	}

	if schema.Items != nil {
		googleSchema.Items = toGoogleSchema(schema.Items)
	}

	return googleSchema
}

func toGoogleSchemaType(schemaType string) genai.Type {
	switch strings.ToLower(schemaType) {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}
