// Package openai provides a provinv.Completer backed by any
// OpenAI-compatible chat-completion endpoint (OpenAI, Ollama,
// LiteLLM, vLLM, ...). The endpoint is treated as a stateless
// transport: one user message in, the first choice's text out.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/provinv"
)

// Defaults target a local Ollama instance exposing the
// OpenAI-compatible API.
const (
	DefaultEndpoint = "http://localhost:11434/v1/chat/completions"
	DefaultModel    = "qwen2.5:3b"
	DefaultAPIKey   = "sk-1234"
	DefaultTimeout  = 60 * time.Second
)

// temperature is kept low: extraction wants determinism, not flair.
const temperature = 0.1

// Ensure Completer implements provinv.Completer at compile time.
var _ provinv.Completer = (*Completer)(nil)

// Completer issues chat-completion requests to a configured endpoint.
type Completer struct {
	endpoint string
	model    string
	apiKey   string
	timeout  time.Duration
	client   *http.Client
}

// Option configures a Completer.
type Option func(*Completer)

// WithEndpoint sets the chat-completion endpoint URL.
func WithEndpoint(url string) Option {
	return func(c *Completer) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithModel sets the model identifier sent with each request.
func WithModel(name string) Option {
	return func(c *Completer) {
		if name != "" {
			c.model = name
		}
	}
}

// WithAPIKey sets the bearer credential.
func WithAPIKey(key string) Option {
	return func(c *Completer) {
		if key != "" {
			c.apiKey = key
		}
	}
}

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Completer) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(opts ...Option) *Completer {
	c := &Completer{
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		apiKey:   DefaultAPIKey,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// chatRequest is the OpenAI chat-completion request envelope.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the response envelope we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns the
// first choice's text. Transport errors, non-2xx statuses and
// malformed or empty envelopes are all reported as EEXTRACT; the
// completer never retries.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", provinv.Errorf(provinv.EINVALID, "prompt required")
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", provinv.Errorf(provinv.EINTERNAL, "marshal completion request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", provinv.Errorf(provinv.EEXTRACT, "invalid endpoint %q: %v", c.endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", provinv.Errorf(provinv.EEXTRACT, "completion request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Include a short body excerpt; endpoints put the useful
		// diagnostics (quota, model-not-found) there.
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return "", provinv.Errorf(provinv.EEXTRACT, "completion endpoint returned HTTP %d: %s", resp.StatusCode, excerpt)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", provinv.Errorf(provinv.EEXTRACT, "decode completion response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", provinv.Errorf(provinv.EEXTRACT, "completion response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
