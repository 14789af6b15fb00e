// Package llm abstracts the supported LLM backends behind a common
// Thread interface. Each thread keeps its conversation history in the
// provider's native message format and drives the send/tool-dispatch
// loop internally, so callers only hand in a user message and a
// handler for the streamed events.
package llm

import "context"

// MessageHandler receives the events of one agent turn
type MessageHandler interface {
	HandleText(text string)
	HandleToolUse(toolName, input string)
	HandleToolResult(toolName, result string)
	HandleDone()
}

// Thread is a stateful conversation against one LLM backend. A thread
// is not safe for concurrent SendMessage calls; the chat loop issues
// one turn at a time.
type Thread interface {
	// Provider returns the backend name (e.g. "openrouter", "bedrock")
	Provider() string
	// SendMessage appends a user message, dispatches any tool calls the
	// model makes, and returns the model's final text output.
	SendMessage(ctx context.Context, message string, handler MessageHandler) (string, error)
}

// NoopHandler discards all events; useful for tests and one-shot runs
// that only need the return value.
type NoopHandler struct{}

// HandleText implements MessageHandler
func (NoopHandler) HandleText(string) {}

// HandleToolUse implements MessageHandler
func (NoopHandler) HandleToolUse(string, string) {}

// HandleToolResult implements MessageHandler
func (NoopHandler) HandleToolResult(string, string) {}

// HandleDone implements MessageHandler
func (NoopHandler) HandleDone() {}
