package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
)

func setupRegistry(t *testing.T) *skills.Registry {
	t.Helper()
	tmpDir := t.TempDir()

	skillDir := filepath.Join(tmpDir, "weather")
	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "references"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(`---
name: weather
description: Get weather information for locations
---

# Weather Skill

Fetch forecasts from the Open-Meteo API.
`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(skillDir, "references", "api_reference.md"),
		[]byte("# Open-Meteo API Reference\n"), 0o644))

	registry := skills.NewRegistry(tmpDir)
	registry.Discover(context.Background())
	return registry
}

func marshalInput(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestLoadSkillTool(t *testing.T) {
	tool := NewLoadSkillTool(setupRegistry(t))

	assert.Equal(t, "load_skill", tool.Name())
	assert.Contains(t, tool.Description(), "- **weather**: Get weather information for locations")

	input := marshalInput(t, LoadSkillInput{SkillName: "weather"})
	require.NoError(t, tool.ValidateInput(input))

	result := tool.Execute(context.Background(), input)
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "# Weather Skill")
	assert.NotContains(t, result.GetResult(), "description:")
	assert.Contains(t, result.AssistantFacing(), "# Skill: weather")
}

func TestLoadSkillToolUnknownSkill(t *testing.T) {
	tool := NewLoadSkillTool(setupRegistry(t))

	result := tool.Execute(context.Background(), marshalInput(t, LoadSkillInput{SkillName: "ghost"}))
	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "'ghost' not found")
	// the error must list the valid alternatives
	assert.Contains(t, result.GetError(), "weather")
}

func TestLoadSkillToolValidateInput(t *testing.T) {
	tool := NewLoadSkillTool(setupRegistry(t))

	assert.Error(t, tool.ValidateInput("not json"))
	assert.Error(t, tool.ValidateInput(`{}`))
}

func TestReadSkillFileTool(t *testing.T) {
	tool := NewReadSkillFileTool(setupRegistry(t))

	input := marshalInput(t, ReadSkillFileInput{SkillName: "weather", FilePath: "references/api_reference.md"})
	require.NoError(t, tool.ValidateInput(input))

	result := tool.Execute(context.Background(), input)
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "Open-Meteo API Reference")
}

func TestReadSkillFileToolTraversalDenied(t *testing.T) {
	tool := NewReadSkillFileTool(setupRegistry(t))

	result := tool.Execute(context.Background(), marshalInput(t, ReadSkillFileInput{
		SkillName: "weather",
		FilePath:  "references/../../../etc/passwd",
	}))
	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "access denied")
	assert.NotContains(t, result.AssistantFacing(), "root:")
}

func TestReadSkillFileToolNotFound(t *testing.T) {
	tool := NewReadSkillFileTool(setupRegistry(t))

	result := tool.Execute(context.Background(), marshalInput(t, ReadSkillFileInput{
		SkillName: "weather",
		FilePath:  "references/missing.md",
	}))
	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "not found")
	assert.NotContains(t, result.GetError(), "access denied")
}

func TestReadSkillFileToolValidateInput(t *testing.T) {
	tool := NewReadSkillFileTool(setupRegistry(t))

	assert.Error(t, tool.ValidateInput(marshalInput(t, ReadSkillFileInput{FilePath: "a.md"})))
	assert.Error(t, tool.ValidateInput(marshalInput(t, ReadSkillFileInput{SkillName: "weather"})))
}

func TestListSkillFilesTool(t *testing.T) {
	tool := NewListSkillFilesTool(setupRegistry(t))

	result := tool.Execute(context.Background(), marshalInput(t, ListSkillFilesInput{SkillName: "weather"}))
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "SKILL.md")
	assert.Contains(t, result.GetResult(), "references/api_reference.md")
}

func TestListSkillFilesToolSubdirectory(t *testing.T) {
	tool := NewListSkillFilesTool(setupRegistry(t))

	result := tool.Execute(context.Background(), marshalInput(t, ListSkillFilesInput{
		SkillName:    "weather",
		Subdirectory: "references",
	}))
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "references/api_reference.md")
	assert.NotContains(t, result.GetResult(), "SKILL.md")
}

func TestListSkillFilesToolUnknownSkill(t *testing.T) {
	tool := NewListSkillFilesTool(setupRegistry(t))

	result := tool.Execute(context.Background(), marshalInput(t, ListSkillFilesInput{SkillName: "ghost"}))
	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "weather")
}

func TestRunToolDispatch(t *testing.T) {
	registry := setupRegistry(t)
	available := All(registry)

	result := RunTool(context.Background(), available, "load_skill", marshalInput(t, LoadSkillInput{SkillName: "weather"}))
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "# Weather Skill")
}

func TestRunToolUnknownTool(t *testing.T) {
	registry := setupRegistry(t)

	result := RunTool(context.Background(), All(registry), "launch_missiles", `{}`)
	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "'launch_missiles' not found")
}

func TestRunToolValidationFailure(t *testing.T) {
	registry := setupRegistry(t)

	result := RunTool(context.Background(), All(registry), "load_skill", `{}`)
	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "skill_name is required")
}

func TestToolSchemas(t *testing.T) {
	registry := setupRegistry(t)
	for _, tool := range All(registry) {
		schema := tool.GenerateSchema()
		require.NotNil(t, schema, tool.Name())
		assert.NotEmpty(t, tool.Name())
		assert.NotEmpty(t, tool.Description())
	}
}
