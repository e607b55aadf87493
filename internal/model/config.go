package model

import "time"

// Config holds the host-side configuration. The classifier lexicons are
// compiled-in constants and deliberately not configurable.
type Config struct {
	Providers   ProvidersConfig   `mapstructure:"providers" yaml:"providers"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Pipeline    PipelineConfig    `mapstructure:"pipeline" yaml:"pipeline"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
}

// ProvidersConfig configures the external AI services the dispatcher queries.
// A provider with no API key (or for Ollama, no base URL) is skipped.
type ProvidersConfig struct {
	OpenAI    OpenAIConfig    `mapstructure:"openai" yaml:"openai"`
	Anthropic AnthropicConfig `mapstructure:"anthropic" yaml:"anthropic"`
	Ollama    OllamaConfig    `mapstructure:"ollama" yaml:"ollama"`
	// RequestsPerSecond rate-limits each provider independently.
	RequestsPerSecond float64       `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `mapstructure:"burst" yaml:"burst"`
	Timeout           time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// OpenAIConfig configures the OpenAI-compatible provider.
type OpenAIConfig struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
	Model     string `mapstructure:"model" yaml:"model"`
	MaxTokens int    `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
	Model     string `mapstructure:"model" yaml:"model"`
	MaxTokens int    `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// OllamaConfig configures a local Ollama instance.
type OllamaConfig struct {
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
	Model     string `mapstructure:"model" yaml:"model"`
	MaxTokens int    `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// ConcurrencyConfig sets caller-side fan-out width. The pipeline itself is
// synchronous; concurrency applies across independent invocations only.
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// CacheConfig configures the provider-response cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// PipelineConfig toggles optional analysis stages.
type PipelineConfig struct {
	EnhancedNLP bool `mapstructure:"enhanced_nlp" yaml:"enhanced_nlp"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `mapstructure:"verbose" yaml:"verbose"`
	IncludeFooter bool `mapstructure:"include_footer" yaml:"include_footer"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			OpenAI: OpenAIConfig{
				Model:     "gpt-4o-mini",
				MaxTokens: 1000,
			},
			Anthropic: AnthropicConfig{
				Model:     "claude-3-5-haiku-20241022",
				MaxTokens: 1000,
			},
			Ollama: OllamaConfig{
				Model:     "llama3.1",
				MaxTokens: 1000,
			},
			RequestsPerSecond: 1,
			Burst:             2,
			Timeout:           30 * time.Second,
		},
		Concurrency: ConcurrencyConfig{Workers: 4},
		Cache:       CacheConfig{Enabled: true, TTL: 15 * time.Minute},
		Pipeline:    PipelineConfig{EnhancedNLP: false},
		Output:      OutputConfig{IncludeFooter: true},
	}
}
