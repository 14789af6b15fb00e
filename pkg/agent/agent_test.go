package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
)

func writeTestSkill(t *testing.T, root, name, description string) {
	t.Helper()
	skillDir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	content := "---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644))
}

func TestSystemPromptIncludesSkills(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestSkill(t, tmpDir, "weather", "Get weather information for locations")
	writeTestSkill(t, tmpDir, "code_review", "Review code for quality and security issues")

	registry := skills.NewRegistry(tmpDir)
	registry.Discover(context.Background())

	prompt := SystemPrompt(registry)

	assert.Contains(t, prompt, "- **weather**: Get weather information for locations")
	assert.Contains(t, prompt, "- **code_review**: Review code for quality and security issues")
	assert.Contains(t, prompt, "load_skill")
	assert.Contains(t, prompt, "read_skill_file")
	assert.Contains(t, prompt, "list_skill_files")
}

func TestSystemPromptNoSkills(t *testing.T) {
	registry := skills.NewRegistry(t.TempDir())
	registry.Discover(context.Background())

	prompt := SystemPrompt(registry)
	assert.Contains(t, prompt, "No skills currently available.")
}

func TestSystemPromptDeterministic(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		writeTestSkill(t, tmpDir, name, name+" description")
	}

	registry := skills.NewRegistry(tmpDir)
	registry.Discover(context.Background())

	first := SystemPrompt(registry)
	registry.Discover(context.Background())
	second := SystemPrompt(registry)

	assert.Equal(t, first, second)
}

func TestNewDependencies(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestSkill(t, tmpDir, "weather", "Get weather data")

	cfg := &config.Config{SkillsDir: tmpDir, Provider: config.ProviderOllama, Model: "llama3.3", MaxTokens: 1024}
	deps := NewDependencies(context.Background(), cfg)

	require.NotNil(t, deps.Registry)
	assert.Equal(t, []string{"weather"}, deps.Registry.Names())
	assert.NotEmpty(t, deps.SessionID)
	assert.NotNil(t, deps.UserPreferences)
}

func TestNewAgent(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestSkill(t, tmpDir, "weather", "Get weather data")

	cfg := &config.Config{SkillsDir: tmpDir, Provider: config.ProviderOllama, Model: "llama3.3", MaxTokens: 1024}
	agent, err := New(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotNil(t, agent.Dependencies().Registry)
	assert.Len(t, agent.Dependencies().Registry.Names(), 1)
}

func TestNewAgentUnsupportedProvider(t *testing.T) {
	cfg := &config.Config{SkillsDir: t.TempDir(), Provider: "watson", Model: "m", MaxTokens: 1024}
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestSessionIDsAreUnique(t *testing.T) {
	cfg := &config.Config{SkillsDir: t.TempDir(), Provider: config.ProviderOllama, Model: "m", MaxTokens: 1024}

	a := NewDependencies(context.Background(), cfg)
	b := NewDependencies(context.Background(), cfg)

	assert.NotEqual(t, a.SessionID, b.SessionID)
}
