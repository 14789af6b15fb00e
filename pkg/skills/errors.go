package skills

import (
	"fmt"
	"strings"
)

// UnknownSkillError is returned when a skill name does not resolve
// against the registry. It enumerates the available names so the model
// can recover by retrying with a valid one.
type UnknownSkillError struct {
	Name      string
	Available []string
}

func (e *UnknownSkillError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("Error: skill '%s' not found. No skills are currently available.", e.Name)
	}
	return fmt.Sprintf("Error: skill '%s' not found. Available skills: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// AccessDeniedError is returned when a resource path resolves outside
// the owning skill's directory.
type AccessDeniedError struct {
	Skill string
	Path  string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("Error: access denied: '%s' resolves outside the '%s' skill directory", e.Path, e.Skill)
}

// ResourceNotFoundError is returned when a path stays inside the skill
// directory but no file exists there.
type ResourceNotFoundError struct {
	Skill string
	Path  string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("Error: file '%s' not found in skill '%s'", e.Path, e.Skill)
}

// ReadFailedError is the generic wrapper for unexpected I/O failures.
// The underlying cause is logged, not surfaced, so the model sees a
// stable message without host filesystem details.
type ReadFailedError struct {
	Path string
}

func (e *ReadFailedError) Error() string {
	return fmt.Sprintf("Error: could not read file '%s'", e.Path)
}
