package dispatch

import (
	"context"
	"time"
)

// The answer prompt keeps providers on-topic; the analysis afterwards is
// what the tool is actually for.
const systemPrompt = "You are a civic information assistant. Answer the " +
	"citizen's question clearly and concisely, in the language it was asked in."

// Provider asks one external AI service a question and returns its raw answer.
type Provider interface {
	// Name identifies the service ("openai", "anthropic", "ollama").
	Name() string

	// Model is the configured model identifier.
	Model() string

	// Ask sends the question and returns the raw response text.
	Ask(ctx context.Context, question string) (string, error)
}

// Config holds one provider's connection settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration

	// Proxy settings, used by the Ollama provider only.
	HTTPProxy  string
	HTTPSProxy string
}
