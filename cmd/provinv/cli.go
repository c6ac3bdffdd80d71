package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLFile   string `arg:"" help:"Text file with one provider profile URL per line"`
	OutputCSV string `arg:"" help:"Output CSV path"`

	Endpoint   string        `default:"http://localhost:11434/v1/chat/completions" help:"OpenAI-compatible chat-completion endpoint URL"`
	Model      string        `default:"qwen2.5:3b" help:"Model name sent with each request"`
	APIKey     string        `name:"api-key" default:"sk-1234" help:"Bearer token for the endpoint"`
	Backend    string        `default:"openai" enum:"openai,gemini" help:"Extraction backend (openai or gemini)"`
	Timeout    time.Duration `default:"30s" help:"Per-request page fetch timeout"`
	RPS        float64       `default:"2" help:"Max outbound page fetches per second (0 disables pacing)"`
	Cache      string        `help:"SQLite page-cache path; re-runs reuse cached pages"`
	MaxContent int           `name:"max-content" default:"10000" help:"Max page content bytes sent to the model"`
	Raw        bool          `help:"Skip content extraction and send raw HTML to the model"`
}
