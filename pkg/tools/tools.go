// Package tools implements the capabilities exposed to the model:
// the three skill disclosure tools and the outbound HTTP helpers.
// Every tool receives its collaborators (the skill registry) at
// construction time; there is no package-level mutable state.
package tools

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

// GenerateSchema reflects a JSON schema from an input struct type
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T

	return reflector.Reflect(v)
}

// All returns the full tool set wired against the given registry
func All(registry *skills.Registry) []tooltypes.Tool {
	return []tooltypes.Tool{
		NewLoadSkillTool(registry),
		NewReadSkillFileTool(registry),
		NewListSkillFilesTool(registry),
		NewHTTPGetTool(),
		NewHTTPPostTool(),
	}
}

// RunTool dispatches one tool call by name. Validation and execution
// failures come back as error results, never as panics: the output of
// this function goes straight into the model's tool-result channel.
func RunTool(ctx context.Context, available []tooltypes.Tool, name, parameters string) tooltypes.ToolResult {
	for _, tool := range available {
		if tool.Name() != name {
			continue
		}
		if err := tool.ValidateInput(parameters); err != nil {
			return &errorToolResult{err: err.Error()}
		}
		return tool.Execute(ctx, parameters)
	}
	return &errorToolResult{err: fmt.Sprintf("tool '%s' not found", name)}
}

// errorToolResult is a ToolResult carrying only an error message
type errorToolResult struct {
	err string
}

func (r *errorToolResult) GetResult() string { return "" }
func (r *errorToolResult) GetError() string  { return r.err }
func (r *errorToolResult) IsError() bool     { return true }
func (r *errorToolResult) AssistantFacing() string {
	return tooltypes.StringifyToolResult("", r.err)
}
