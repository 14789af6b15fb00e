package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
	tooltypes "github.com/royjoydeep348/custom-agent-with-skills/pkg/types/tools"
)

const (
	httpRequestTimeout = 30 * time.Second
	// maxResponseBytes caps how much of a response body is returned to
	// the model
	maxResponseBytes = 100_000
)

// HTTPGetTool performs GET requests so skills can call external APIs
// (the weather skill's Open-Meteo workflow, for example).
type HTTPGetTool struct {
	client *http.Client
}

// HTTPGetInput defines the input parameters for the http_get tool
type HTTPGetInput struct {
	URL string `json:"url" jsonschema:"description=The URL to fetch"`
}

// HTTPPostTool performs POST requests with a JSON body
type HTTPPostTool struct {
	client *http.Client
}

// HTTPPostInput defines the input parameters for the http_post tool
type HTTPPostInput struct {
	URL  string `json:"url" jsonschema:"description=The URL to post to"`
	Body string `json:"body,omitempty" jsonschema:"description=JSON body to send with the request"`
}

// HTTPToolResult represents the outcome of an HTTP request
type HTTPToolResult struct {
	url        string
	statusCode int
	body       string
	err        string
}

// NewHTTPGetTool creates an http_get tool with a default client
func NewHTTPGetTool() *HTTPGetTool {
	return &HTTPGetTool{client: &http.Client{Timeout: httpRequestTimeout}}
}

// NewHTTPPostTool creates an http_post tool with a default client
func NewHTTPPostTool() *HTTPPostTool {
	return &HTTPPostTool{client: &http.Client{Timeout: httpRequestTimeout}}
}

// Name returns the tool name
func (t *HTTPGetTool) Name() string {
	return "http_get"
}

// Description returns the tool description
func (t *HTTPGetTool) Description() string {
	return `Make an HTTP GET request to a URL and return the response body as text. Use this to call external APIs that a skill's instructions describe, such as weather or geocoding endpoints.`
}

// GenerateSchema generates the JSON schema for the tool's input
func (t *HTTPGetTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[HTTPGetInput]()
}

// ValidateInput validates the input parameters
func (t *HTTPGetTool) ValidateInput(parameters string) error {
	var input HTTPGetInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return errors.Wrap(err, "invalid input")
	}
	return validateURL(input.URL)
}

// TracingKVs returns tracing key-value pairs for observability
func (t *HTTPGetTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	var input HTTPGetInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return nil, err
	}

	return []attribute.KeyValue{
		attribute.String("url", input.URL),
	}, nil
}

// Execute performs the GET request, retrying transient failures
func (t *HTTPGetTool) Execute(ctx context.Context, parameters string) tooltypes.ToolResult {
	var input HTTPGetInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return &HTTPToolResult{err: err.Error()}
	}

	var result *HTTPToolResult
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.URL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := t.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			result = readResponse(input.URL, resp)
			if resp.StatusCode >= 500 {
				return errors.Errorf("server error: %s", resp.Status)
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil && result == nil {
		logger.G(ctx).WithError(err).WithField("url", input.URL).Error("http_get failed")
		return &HTTPToolResult{url: input.URL, err: fmt.Sprintf("Error: request to %s failed: %s", input.URL, err)}
	}

	return result
}

// Name returns the tool name
func (t *HTTPPostTool) Name() string {
	return "http_post"
}

// Description returns the tool description
func (t *HTTPPostTool) Description() string {
	return `Make an HTTP POST request with an optional JSON body and return the response as text.`
}

// GenerateSchema generates the JSON schema for the tool's input
func (t *HTTPPostTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[HTTPPostInput]()
}

// ValidateInput validates the input parameters
func (t *HTTPPostTool) ValidateInput(parameters string) error {
	var input HTTPPostInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return errors.Wrap(err, "invalid input")
	}
	if err := validateURL(input.URL); err != nil {
		return err
	}
	if input.Body != "" && !json.Valid([]byte(input.Body)) {
		return errors.New("body must be valid JSON")
	}
	return nil
}

// TracingKVs returns tracing key-value pairs for observability
func (t *HTTPPostTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	var input HTTPPostInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return nil, err
	}

	return []attribute.KeyValue{
		attribute.String("url", input.URL),
	}, nil
}

// Execute performs the POST request. POSTs are not retried because they
// are not idempotent.
func (t *HTTPPostTool) Execute(ctx context.Context, parameters string) tooltypes.ToolResult {
	var input HTTPPostInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return &HTTPToolResult{err: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, input.URL, strings.NewReader(input.Body))
	if err != nil {
		return &HTTPToolResult{url: input.URL, err: fmt.Sprintf("Error: invalid request: %s", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("url", input.URL).Error("http_post failed")
		return &HTTPToolResult{url: input.URL, err: fmt.Sprintf("Error: request to %s failed: %s", input.URL, err)}
	}
	defer resp.Body.Close()

	return readResponse(input.URL, resp)
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url is required")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return errors.New("url must start with http:// or https://")
	}
	return nil
}

func readResponse(url string, resp *http.Response) *HTTPToolResult {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return &HTTPToolResult{url: url, statusCode: resp.StatusCode, err: fmt.Sprintf("Error: could not read response from %s", url)}
	}

	truncated := false
	if len(body) > maxResponseBytes {
		body = body[:maxResponseBytes]
		truncated = true
	}

	text := string(body)
	if truncated {
		text += "\n\n[response truncated]"
	}

	return &HTTPToolResult{url: url, statusCode: resp.StatusCode, body: text}
}

// GetResult returns the response body with status line
func (r *HTTPToolResult) GetResult() string {
	if r.body == "" {
		return fmt.Sprintf("HTTP %d (empty body)", r.statusCode)
	}
	return fmt.Sprintf("HTTP %d\n\n%s", r.statusCode, r.body)
}

// GetError returns the error string
func (r *HTTPToolResult) GetError() string {
	return r.err
}

// IsError returns true if there was an error
func (r *HTTPToolResult) IsError() bool {
	return r.err != ""
}

// AssistantFacing returns the content to be fed to the LLM
func (r *HTTPToolResult) AssistantFacing() string {
	if r.err != "" {
		return tooltypes.StringifyToolResult("", r.err)
	}
	return tooltypes.StringifyToolResult(r.GetResult(), "")
}
