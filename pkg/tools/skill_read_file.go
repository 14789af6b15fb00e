package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

// ReadSkillFileTool reads one resource file from a skill's directory
// (level 3 of progressive disclosure).
type ReadSkillFileTool struct {
	registry *skills.Registry
}

// ReadSkillFileInput defines the input parameters for the read_skill_file tool
type ReadSkillFileInput struct {
	SkillName string `json:"skill_name" jsonschema:"description=The name of the skill that owns the file"`
	FilePath  string `json:"file_path" jsonschema:"description=Path of the file relative to the skill directory (e.g. references/api_reference.md)"`
}

// ReadSkillFileToolResult represents the result of reading a skill file
type ReadSkillFileToolResult struct {
	content string
	err     string
}

// NewReadSkillFileTool creates the read_skill_file tool bound to a registry
func NewReadSkillFileTool(registry *skills.Registry) *ReadSkillFileTool {
	return &ReadSkillFileTool{registry: registry}
}

// Name returns the tool name
func (t *ReadSkillFileTool) Name() string {
	return "read_skill_file"
}

// Description returns the tool description
func (t *ReadSkillFileTool) Description() string {
	return `Read a specific file from a skill's directory, such as a reference document or script mentioned in the skill's instructions.

The file path is relative to the skill directory. Paths escaping the skill directory are rejected. Use list_skill_files to see which files exist.`
}

// GenerateSchema generates the JSON schema for the tool's input
func (t *ReadSkillFileTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[ReadSkillFileInput]()
}

// ValidateInput validates the input parameters
func (t *ReadSkillFileTool) ValidateInput(parameters string) error {
	var input ReadSkillFileInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return errors.Wrap(err, "invalid input")
	}
	if input.SkillName == "" {
		return errors.New("skill_name is required")
	}
	if input.FilePath == "" {
		return errors.New("file_path is required")
	}
	return nil
}

// TracingKVs returns tracing key-value pairs for observability
func (t *ReadSkillFileTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	var input ReadSkillFileInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return nil, err
	}

	return []attribute.KeyValue{
		attribute.String("skill_name", input.SkillName),
		attribute.String("file_path", input.FilePath),
	}, nil
}

// Execute reads the requested resource file
func (t *ReadSkillFileTool) Execute(ctx context.Context, parameters string) tooltypes.ToolResult {
	var input ReadSkillFileInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return &ReadSkillFileToolResult{err: err.Error()}
	}

	content, err := t.registry.ReadResource(ctx, input.SkillName, input.FilePath)
	if err != nil {
		return &ReadSkillFileToolResult{err: err.Error()}
	}

	return &ReadSkillFileToolResult{content: content}
}

// GetResult returns the file content
func (r *ReadSkillFileToolResult) GetResult() string {
	return r.content
}

// GetError returns the error string
func (r *ReadSkillFileToolResult) GetError() string {
	return r.err
}

// IsError returns true if there was an error
func (r *ReadSkillFileToolResult) IsError() bool {
	return r.err != ""
}

// AssistantFacing returns the content to be fed to the LLM
func (r *ReadSkillFileToolResult) AssistantFacing() string {
	return tooltypes.StringifyToolResult(r.content, r.err)
}
