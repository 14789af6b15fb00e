package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGetTool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		io.WriteString(w, `{"temperature": 21.5}`)
	}))
	defer server.Close()

	tool := NewHTTPGetTool()
	input := marshalHTTPInput(t, HTTPGetInput{URL: server.URL})
	require.NoError(t, tool.ValidateInput(input))

	result := tool.Execute(context.Background(), input)
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "HTTP 200")
	assert.Contains(t, result.GetResult(), `"temperature": 21.5`)
}

func TestHTTPGetToolRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		io.WriteString(w, "recovered")
	}))
	defer server.Close()

	tool := NewHTTPGetTool()
	result := tool.Execute(context.Background(), marshalHTTPInput(t, HTTPGetInput{URL: server.URL}))

	require.False(t, result.IsError())
	assert.Equal(t, 3, attempts)
	assert.Contains(t, result.GetResult(), "recovered")
}

func TestHTTPGetToolTruncatesLargeResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, strings.Repeat("x", maxResponseBytes+500))
	}))
	defer server.Close()

	tool := NewHTTPGetTool()
	result := tool.Execute(context.Background(), marshalHTTPInput(t, HTTPGetInput{URL: server.URL}))

	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "[response truncated]")
}

func TestHTTPGetToolConnectionError(t *testing.T) {
	tool := NewHTTPGetTool()
	result := tool.Execute(context.Background(), marshalHTTPInput(t, HTTPGetInput{URL: "http://127.0.0.1:1"}))

	require.True(t, result.IsError())
	assert.Contains(t, result.GetError(), "failed")
}

func TestHTTPGetToolValidateInput(t *testing.T) {
	tool := NewHTTPGetTool()

	assert.Error(t, tool.ValidateInput(`{}`))
	assert.Error(t, tool.ValidateInput(marshalHTTPInput(t, HTTPGetInput{URL: "ftp://example.com"})))
	assert.NoError(t, tool.ValidateInput(marshalHTTPInput(t, HTTPGetInput{URL: "https://example.com"})))
}

func TestHTTPPostTool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"city": "Berlin"}`, string(body))
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	tool := NewHTTPPostTool()
	input := marshalHTTPInput(t, HTTPPostInput{URL: server.URL, Body: `{"city": "Berlin"}`})
	require.NoError(t, tool.ValidateInput(input))

	result := tool.Execute(context.Background(), input)
	require.False(t, result.IsError())
	assert.Contains(t, result.GetResult(), "ok")
}

func TestHTTPPostToolValidateInput(t *testing.T) {
	tool := NewHTTPPostTool()

	assert.Error(t, tool.ValidateInput(marshalHTTPInput(t, HTTPPostInput{URL: "https://example.com", Body: "not json"})))
	assert.NoError(t, tool.ValidateInput(marshalHTTPInput(t, HTTPPostInput{URL: "https://example.com", Body: `{"a":1}`})))
	assert.NoError(t, tool.ValidateInput(marshalHTTPInput(t, HTTPPostInput{URL: "https://example.com"})))
}

func marshalHTTPInput(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
