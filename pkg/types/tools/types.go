// Package tools defines the contract between the agent and its tools.
// Tool results are rendered to plain strings at this boundary because
// the consumer is an LLM tool-call channel, not code that can inspect
// structured errors.
package tools

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel/attribute"
)

// Tool is implemented by every capability exposed to the model
type Tool interface {
	GenerateSchema() *jsonschema.Schema
	Name() string
	Description() string
	ValidateInput(parameters string) error
	Execute(ctx context.Context, parameters string) ToolResult
	TracingKVs(parameters string) ([]attribute.KeyValue, error)
}

// ToolResult carries the outcome of one tool invocation
type ToolResult interface {
	GetResult() string
	GetError() string
	IsError() bool
	AssistantFacing() string
}

// StringifyToolResult renders a result/error pair into the text block
// fed back to the model. Exactly one of result/errMsg is expected to be
// non-empty, but both are rendered if present.
func StringifyToolResult(result, errMsg string) string {
	out := ""
	if errMsg != "" {
		out = fmt.Sprintf("<error>\n%s\n</error>\n", errMsg)
	}
	if result != "" {
		out += fmt.Sprintf("<result>\n%s\n</result>\n", result)
	}
	if out == "" {
		out = "<result>\n(no output)\n</result>\n"
	}
	return out
}
