package skills

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
)

// Registry discovers skills under a single root directory and answers
// all three disclosure levels against them. One Registry is constructed
// per agent session; Discover must complete before accessors run, after
// which all reads are safe to run concurrently.
type Registry struct {
	rootDir string
	skills  map[string]*Skill
}

// NewRegistry creates an empty registry for the given skills root.
// The root directory does not have to exist; discovery over a missing
// root simply yields zero skills.
func NewRegistry(rootDir string) *Registry {
	return &Registry{
		rootDir: rootDir,
		skills:  make(map[string]*Skill),
	}
}

// RootDir returns the configured skills root directory
func (r *Registry) RootDir() string {
	return r.rootDir
}

// Discover scans the root for immediate subdirectories containing a
// SKILL.md file and fully replaces the registry contents with the
// successfully parsed descriptors. Directories without a declaration
// file are skipped silently; malformed declarations are logged and
// skipped so one bad skill never hides its siblings. Subdirectories are
// visited in name order, and on duplicate skill names the last one
// visited wins. Returns a name-sorted snapshot.
func (r *Registry) Discover(ctx context.Context) []*Skill {
	log := logger.G(ctx)
	discovered := make(map[string]*Skill)

	entries, err := os.ReadDir(r.rootDir)
	if err != nil {
		log.WithError(err).WithField("dir", r.rootDir).Debug("skills directory not readable, running with zero skills")
		r.skills = discovered
		return nil
	}

	for _, entry := range entries {
		entryPath := filepath.Join(r.rootDir, entry.Name())

		// os.Stat rather than entry.IsDir so symlinked skill
		// directories are followed
		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		declPath := filepath.Join(entryPath, skillFileName)
		if _, err := os.Stat(declPath); err != nil {
			// no declaration file: a skill folder under
			// construction, not an error
			continue
		}

		skill, err := parseSkillFile(declPath)
		if err != nil {
			log.WithError(err).WithField("skill_dir", entryPath).Warn("skipping malformed skill")
			continue
		}

		absDir, err := filepath.Abs(entryPath)
		if err != nil {
			log.WithError(err).WithField("skill_dir", entryPath).Warn("skipping skill with unresolvable directory")
			continue
		}
		skill.Directory = absDir

		if prev, exists := discovered[skill.Name]; exists {
			log.WithField("skill", skill.Name).
				WithField("kept", skill.Directory).
				WithField("shadowed", prev.Directory).
				Warn("duplicate skill name, last directory wins")
		}
		discovered[skill.Name] = skill
	}

	r.skills = discovered
	return r.snapshot()
}

// Get resolves a skill by name. The returned error is always an
// *UnknownSkillError carrying the currently available names.
func (r *Registry) Get(name string) (*Skill, error) {
	if skill, ok := r.skills[name]; ok {
		return skill, nil
	}
	return nil, &UnknownSkillError{Name: name, Available: r.Names()}
}

// Names returns all registered skill names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.skills))
	for name := range r.skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the registered skills keyed by name
func (r *Registry) Skills() map[string]*Skill {
	return r.skills
}

func (r *Registry) snapshot() []*Skill {
	out := make([]*Skill, 0, len(r.skills))
	for _, name := range r.Names() {
		out = append(out, r.skills[name])
	}
	return out
}

// MetadataPrompt renders the level-1 summary folded into the system
// prompt. Output is sorted by name so repeated renders are byte-stable
// and prompt caching in the calling framework stays effective.
func (r *Registry) MetadataPrompt() string {
	if len(r.skills) == 0 {
		return "No skills currently available."
	}

	var sb strings.Builder
	sb.WriteString("Available skills:\n\n")
	for _, name := range r.Names() {
		skill := r.skills[name]
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", skill.Name, skill.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// parseSkillFile parses a SKILL.md declaration: YAML frontmatter with
// required name and description, optional version and author.
func parseSkillFile(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse frontmatter")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name := metaString(metaData, "name")
	description := metaString(metaData, "description")

	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	version := metaString(metaData, "version")
	if version == "" {
		version = DefaultVersion
	}

	return &Skill{
		Name:        name,
		Description: description,
		Version:     version,
		Author:      metaString(metaData, "author"),
	}, nil
}

// metaString coerces a frontmatter value to a trimmed string; YAML
// scalars like `version: 2.0` arrive as numbers, not strings.
func metaString(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// extractBody strips the leading frontmatter block and returns the
// instruction body. Content that no longer starts with the delimiter is
// returned as-is, degrading gracefully if the file changed on disk
// after discovery.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}
	if frontmatterEnd == -1 {
		return content
	}

	return strings.Join(lines[frontmatterEnd+1:], "\n")
}
