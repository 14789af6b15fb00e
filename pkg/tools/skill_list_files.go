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

// ListSkillFilesTool enumerates the files available inside a skill's
// directory so the model can decide what to read next.
type ListSkillFilesTool struct {
	registry *skills.Registry
}

// ListSkillFilesInput defines the input parameters for the list_skill_files tool
type ListSkillFilesInput struct {
	SkillName    string `json:"skill_name" jsonschema:"description=The name of the skill to list files for"`
	Subdirectory string `json:"subdirectory,omitempty" jsonschema:"description=Optional subdirectory to list instead of the whole skill (e.g. references)"`
}

// ListSkillFilesToolResult represents the result of listing skill files
type ListSkillFilesToolResult struct {
	listing string
	err     string
}

// NewListSkillFilesTool creates the list_skill_files tool bound to a registry
func NewListSkillFilesTool(registry *skills.Registry) *ListSkillFilesTool {
	return &ListSkillFilesTool{registry: registry}
}

// Name returns the tool name
func (t *ListSkillFilesTool) Name() string {
	return "list_skill_files"
}

// Description returns the tool description
func (t *ListSkillFilesTool) Description() string {
	return `List all files inside a skill's directory, as paths relative to the skill root. Use this to discover reference documents and scripts before reading them with read_skill_file.`
}

// GenerateSchema generates the JSON schema for the tool's input
func (t *ListSkillFilesTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[ListSkillFilesInput]()
}

// ValidateInput validates the input parameters
func (t *ListSkillFilesTool) ValidateInput(parameters string) error {
	var input ListSkillFilesInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return errors.Wrap(err, "invalid input")
	}
	if input.SkillName == "" {
		return errors.New("skill_name is required")
	}
	return nil
}

// TracingKVs returns tracing key-value pairs for observability
func (t *ListSkillFilesTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	var input ListSkillFilesInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return nil, err
	}

	return []attribute.KeyValue{
		attribute.String("skill_name", input.SkillName),
		attribute.String("subdirectory", input.Subdirectory),
	}, nil
}

// Execute lists the skill's resource files
func (t *ListSkillFilesTool) Execute(ctx context.Context, parameters string) tooltypes.ToolResult {
	var input ListSkillFilesInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return &ListSkillFilesToolResult{err: err.Error()}
	}

	listing, err := t.registry.ListResources(ctx, input.SkillName, input.Subdirectory)
	if err != nil {
		return &ListSkillFilesToolResult{err: err.Error()}
	}

	return &ListSkillFilesToolResult{listing: listing}
}

// GetResult returns the formatted listing
func (r *ListSkillFilesToolResult) GetResult() string {
	return r.listing
}

// GetError returns the error string
func (r *ListSkillFilesToolResult) GetError() string {
	return r.err
}

// IsError returns true if there was an error
func (r *ListSkillFilesToolResult) IsError() bool {
	return r.err != ""
}

// AssistantFacing returns the content to be fed to the LLM
func (r *ListSkillFilesToolResult) AssistantFacing() string {
	return tooltypes.StringifyToolResult(r.listing, r.err)
}
