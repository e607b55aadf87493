package dispatch

import (
	"fmt"
	"os"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// ProvidersFromConfig builds the provider set from the configuration.
// OpenAI and Anthropic are enabled by an API key, Ollama by a base URL.
// Misconfigured providers are skipped with a warning on stderr.
func ProvidersFromConfig(cfg *model.Config) []Provider {
	var providers []Provider

	if cfg.Providers.OpenAI.APIKey != "" {
		p, err := NewOpenAIProvider(Config{
			APIKey:    cfg.Providers.OpenAI.APIKey,
			BaseURL:   cfg.Providers.OpenAI.BaseURL,
			Model:     cfg.Providers.OpenAI.Model,
			MaxTokens: cfg.Providers.OpenAI.MaxTokens,
			Timeout:   cfg.Providers.Timeout,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping OpenAI provider: %v\n", err)
		} else {
			providers = append(providers, p)
		}
	}

	if cfg.Providers.Anthropic.APIKey != "" {
		p, err := NewAnthropicProvider(Config{
			APIKey:    cfg.Providers.Anthropic.APIKey,
			BaseURL:   cfg.Providers.Anthropic.BaseURL,
			Model:     cfg.Providers.Anthropic.Model,
			MaxTokens: cfg.Providers.Anthropic.MaxTokens,
			Timeout:   cfg.Providers.Timeout,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping Anthropic provider: %v\n", err)
		} else {
			providers = append(providers, p)
		}
	}

	if cfg.Providers.Ollama.BaseURL != "" {
		p, err := NewOllamaProvider(Config{
			BaseURL:    cfg.Providers.Ollama.BaseURL,
			Model:      cfg.Providers.Ollama.Model,
			MaxTokens:  cfg.Providers.Ollama.MaxTokens,
			Timeout:    cfg.Providers.Timeout,
			HTTPProxy:  os.Getenv("HTTP_PROXY"),
			HTTPSProxy: os.Getenv("HTTPS_PROXY"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping Ollama provider: %v\n", err)
		} else {
			providers = append(providers, p)
		}
	}

	return providers
}
