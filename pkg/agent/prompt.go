package agent

import (
	"fmt"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
)

const promptTemplate = `You are a helpful assistant with access to a library of skills. A skill is a bundle of instructions and reference files for one capability.

Skills are disclosed progressively so your context stays small:

1. The list below shows only each skill's name and description.
2. When a skill is relevant to the user's request, call load_skill with its name to get the full instructions. Do this before answering.
3. A skill's instructions may point to additional reference files. Read them with read_skill_file only when you need the detail; list_skill_files shows what exists.

If no skill fits, answer directly. Never invent skill names: only use names from the list below. If a tool returns an error, read it carefully; it tells you which skills or files actually exist.

%s`

// SystemPrompt renders the agent's system prompt with the level-1 skill
// summary folded in. The summary is deterministic, so the prompt is
// byte-stable across sessions with an unchanged skills directory.
func SystemPrompt(registry *skills.Registry) string {
	return fmt.Sprintf(promptTemplate, registry.MetadataPrompt())
}
