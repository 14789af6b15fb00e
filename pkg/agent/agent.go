// Package agent wires the skill registry, the tool set, and the LLM
// thread into one conversational agent. It owns the system prompt that
// implements level 1 of progressive disclosure.
package agent

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/llm"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/tools"
)

// Dependencies carries everything an agent session needs. The registry
// is constructed and discovered exactly once here, before any tool can
// reach it.
type Dependencies struct {
	Config          *config.Config
	Registry        *skills.Registry
	SessionID       string
	UserPreferences map[string]string
}

// NewDependencies builds the session dependencies and runs skill
// discovery against the configured skills directory.
func NewDependencies(ctx context.Context, cfg *config.Config) *Dependencies {
	registry := skills.NewRegistry(cfg.SkillsDir)
	discovered := registry.Discover(ctx)

	logger.G(ctx).WithField("count", len(discovered)).
		WithField("dir", cfg.SkillsDir).
		Debug("discovered skills")

	return &Dependencies{
		Config:          cfg,
		Registry:        registry,
		SessionID:       uuid.NewString(),
		UserPreferences: make(map[string]string),
	}
}

// Agent drives one conversation against the configured LLM backend
type Agent struct {
	deps   *Dependencies
	thread llm.Thread
}

// New creates an agent: discovery, tool wiring, system prompt, and
// thread construction in one place.
func New(ctx context.Context, cfg *config.Config) (*Agent, error) {
	deps := NewDependencies(ctx, cfg)

	toolSet := tools.All(deps.Registry)
	thread, err := llm.NewThread(ctx, cfg, SystemPrompt(deps.Registry), toolSet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LLM thread")
	}

	return &Agent{deps: deps, thread: thread}, nil
}

// Dependencies returns the session dependencies
func (a *Agent) Dependencies() *Dependencies {
	return a.deps
}

// Run sends one user message through the thread and returns the final
// text output. Tool calls are dispatched internally by the thread.
func (a *Agent) Run(ctx context.Context, message string, handler llm.MessageHandler) (string, error) {
	ctx = logger.WithLogger(ctx, logger.G(ctx).WithField("session_id", a.deps.SessionID))
	return a.thread.SendMessage(ctx, message, handler)
}
