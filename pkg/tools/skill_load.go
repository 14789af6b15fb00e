package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

// LoadSkillTool loads the full instructions of a skill (level 2 of
// progressive disclosure).
type LoadSkillTool struct {
	registry *skills.Registry
}

// LoadSkillInput defines the input parameters for the load_skill tool
type LoadSkillInput struct {
	SkillName string `json:"skill_name" jsonschema:"description=The name of the skill to load"`
}

// LoadSkillToolResult represents the result of loading a skill
type LoadSkillToolResult struct {
	skillName string
	content   string
	err       string
}

// NewLoadSkillTool creates the load_skill tool bound to a registry
func NewLoadSkillTool(registry *skills.Registry) *LoadSkillTool {
	return &LoadSkillTool{registry: registry}
}

// Name returns the tool name
func (t *LoadSkillTool) Name() string {
	return "load_skill"
}

// Description returns the tool description with the available skills
func (t *LoadSkillTool) Description() string {
	return fmt.Sprintf(`Load the complete instructions of a skill by name. Call this as soon as a skill from the list below is relevant to the user's request, before answering.

The instructions may reference additional files; read those with read_skill_file and enumerate them with list_skill_files.

%s`, t.registry.MetadataPrompt())
}

// GenerateSchema generates the JSON schema for the tool's input
func (t *LoadSkillTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[LoadSkillInput]()
}

// ValidateInput validates the input parameters
func (t *LoadSkillTool) ValidateInput(parameters string) error {
	var input LoadSkillInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return errors.Wrap(err, "invalid input")
	}
	if input.SkillName == "" {
		return errors.New("skill_name is required")
	}
	return nil
}

// TracingKVs returns tracing key-value pairs for observability
func (t *LoadSkillTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	var input LoadSkillInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return nil, err
	}

	return []attribute.KeyValue{
		attribute.String("skill_name", input.SkillName),
	}, nil
}

// Execute loads the skill instructions
func (t *LoadSkillTool) Execute(ctx context.Context, parameters string) tooltypes.ToolResult {
	var input LoadSkillInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return &LoadSkillToolResult{err: err.Error()}
	}

	content, err := t.registry.LoadInstructions(ctx, input.SkillName)
	if err != nil {
		return &LoadSkillToolResult{skillName: input.SkillName, err: err.Error()}
	}

	return &LoadSkillToolResult{skillName: input.SkillName, content: content}
}

// GetResult returns the skill instructions
func (r *LoadSkillToolResult) GetResult() string {
	return r.content
}

// GetError returns the error string
func (r *LoadSkillToolResult) GetError() string {
	return r.err
}

// IsError returns true if there was an error
func (r *LoadSkillToolResult) IsError() bool {
	return r.err != ""
}

// AssistantFacing returns the content to be fed to the LLM
func (r *LoadSkillToolResult) AssistantFacing() string {
	if r.err != "" {
		return tooltypes.StringifyToolResult("", r.err)
	}
	result := fmt.Sprintf("# Skill: %s\n\n%s", r.skillName, r.content)
	return tooltypes.StringifyToolResult(result, "")
}
