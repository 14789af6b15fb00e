// Package skills implements the skill registry and its progressive
// disclosure accessors. A skill is a directory containing a SKILL.md
// file with YAML frontmatter (name, description, optional version and
// author) followed by free-form instructions, plus any number of
// supporting resource files.
//
// Disclosure happens in three levels: the registry's metadata prompt
// exposes name and description only (level 1), LoadInstructions returns
// the SKILL.md body (level 2), and ReadResource/ListResources give
// access to individual files inside the skill directory (level 3).
package skills

// DefaultVersion is used when a skill's frontmatter omits the version field
const DefaultVersion = "1.0.0"

// skillFileName is the declaration file looked up in every skill directory
const skillFileName = "SKILL.md"

// Skill is the validated metadata record for one discovered skill.
// It is immutable after discovery; accessors re-read content from disk
// on every call instead of mutating the descriptor.
type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author,omitempty"`
	// Directory is the absolute path of the skill's directory, the
	// containment root for all resource reads.
	Directory string `yaml:"directory"`
}
