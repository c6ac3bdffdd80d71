// Package gemini provides a provinv.Completer backed by Google
// Gemini, as an alternative to a self-hosted OpenAI-compatible
// endpoint.
package gemini

import (
	"context"

	"github.com/fwojciec/provinv"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements provinv.Completer at compile time.
var _ provinv.Completer = (*Completer)(nil)

// Completer implements provinv.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects
// DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt to Gemini and returns the generated text.
// Failures are reported as EEXTRACT.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", provinv.Errorf(provinv.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", provinv.Errorf(provinv.EEXTRACT, "gemini: %v", err)
	}
	if result == nil {
		return "", provinv.Errorf(provinv.EEXTRACT, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// Temperature matches the OpenAI backend so both produce comparably
// deterministic output.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
