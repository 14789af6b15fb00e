package skills

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
)

// LoadInstructions returns the instruction body of a skill's SKILL.md,
// re-read from disk on every call. The frontmatter block is stripped
// and the body trimmed of surrounding whitespace.
func (r *Registry) LoadInstructions(ctx context.Context, skillName string) (string, error) {
	skill, err := r.Get(skillName)
	if err != nil {
		return "", err
	}

	declPath := filepath.Join(skill.Directory, skillFileName)
	content, err := os.ReadFile(declPath)
	if err != nil {
		logger.G(ctx).WithError(err).
			WithField("skill", skillName).
			WithField("path", declPath).
			Error("failed to read skill declaration")
		return "", &ReadFailedError{Path: skillFileName}
	}

	return strings.TrimSpace(extractBody(string(content))), nil
}

// ReadResource returns the full content of one file inside the skill's
// directory. relativePath is interpreted relative to the skill root and
// must stay inside it: traversal segments, absolute paths, and symlinks
// escaping the root are all rejected with an AccessDeniedError.
func (r *Registry) ReadResource(ctx context.Context, skillName, relativePath string) (string, error) {
	skill, err := r.Get(skillName)
	if err != nil {
		return "", err
	}

	target, _, err := r.resolveWithin(ctx, skill, relativePath)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return "", &ResourceNotFoundError{Skill: skillName, Path: relativePath}
	}

	content, err := os.ReadFile(target)
	if err != nil {
		logger.G(ctx).WithError(err).
			WithField("skill", skillName).
			WithField("path", target).
			Error("failed to read skill resource")
		return "", &ReadFailedError{Path: relativePath}
	}

	return string(content), nil
}

// ListResources enumerates every file under the skill directory (or a
// subdirectory of it), as paths relative to the skill root, sorted
// lexicographically. The subdirectory argument is subject to the same
// containment check as ReadResource.
func (r *Registry) ListResources(ctx context.Context, skillName, subdirectory string) (string, error) {
	skill, err := r.Get(skillName)
	if err != nil {
		return "", err
	}

	target, root, err := r.resolveWithin(ctx, skill, subdirectory)
	if err != nil {
		return "", err
	}

	var files []string
	walkErr := filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.G(ctx).WithError(err).
				WithField("skill", skillName).
				WithField("path", path).
				Warn("skipping unreadable entry during listing")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if walkErr != nil {
		logger.G(ctx).WithError(walkErr).
			WithField("skill", skillName).
			WithField("path", target).
			Error("failed to list skill resources")
		return "", &ReadFailedError{Path: subdirectory}
	}

	if len(files) == 0 {
		return fmt.Sprintf("No files found in skill '%s'.", skillName), nil
	}

	sort.Strings(files)
	return fmt.Sprintf("Files in skill '%s':\n%s", skillName, strings.Join(files, "\n")), nil
}

// resolveWithin canonicalizes root and target and enforces the
// containment invariant: the resolved target must equal the resolved
// skill root or live under it. Both sides are resolved through
// symlinks before comparing, otherwise a planted link would bypass the
// check. Returns the resolved target and resolved root.
func (r *Registry) resolveWithin(ctx context.Context, skill *Skill, relativePath string) (string, string, error) {
	if filepath.IsAbs(relativePath) {
		return "", "", &AccessDeniedError{Skill: skill.Name, Path: relativePath}
	}

	root, err := filepath.EvalSymlinks(skill.Directory)
	if err != nil {
		logger.G(ctx).WithError(err).
			WithField("skill", skill.Name).
			WithField("path", skill.Directory).
			Error("failed to resolve skill directory")
		return "", "", &ReadFailedError{Path: relativePath}
	}

	// lexical check first: filepath.Join cleans the path, so plain
	// ".." traversal is caught before touching the filesystem
	target := filepath.Join(root, relativePath)
	if !isWithin(target, root) {
		return "", "", &AccessDeniedError{Skill: skill.Name, Path: relativePath}
	}

	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", &ResourceNotFoundError{Skill: skill.Name, Path: relativePath}
		}
		logger.G(ctx).WithError(err).
			WithField("skill", skill.Name).
			WithField("path", target).
			Error("failed to resolve resource path")
		return "", "", &ReadFailedError{Path: relativePath}
	}

	if !isWithin(resolved, root) {
		return "", "", &AccessDeniedError{Skill: skill.Name, Path: relativePath}
	}

	return resolved, root, nil
}

func isWithin(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+string(os.PathSeparator))
}
