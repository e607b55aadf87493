package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/cache"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/dispatch"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/export"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/pipeline"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/worker"
)

var (
	askJSON    string
	askTimeout time.Duration
	noCache    bool
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask all configured AI providers and analyze their answers",
	Long: `Ask sends one question to every configured provider, strips markup
from the answers and runs each through the full analysis pipeline, so
the providers' tone, bias, sentiment and ideological lean can be
compared side by side.

Providers are enabled through configuration or environment variables:
  OPENAI_API_KEY, ANTHROPIC_API_KEY, OLLAMA_BASE_URL

Responses are cached on disk; repeating a question does not re-spend
API quota (disable with --no-cache).

Example:
  civicai ask "Vad tycker du om högre skatter?"
  civicai ask "Bör vi privatisera vården?" --json svar.json --enhanced`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askJSON, "json", "", "write envelopes as JSON to this path")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 2*time.Minute, "overall timeout for all providers")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the response cache")
	askCmd.Flags().BoolVar(&enhancedNLP, "enhanced", false, "include the lexical-statistics stage")
}

func runAsk(cmd *cobra.Command, args []string) error {
	q := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg := loadConfig()
	opts := model.AnalysisOptions{IncludeEnhancedNLP: enhancedNLP || cfg.Pipeline.EnhancedNLP}

	providers := dispatch.ProvidersFromConfig(cfg)
	if len(providers) == 0 {
		return fmt.Errorf("no providers configured: set OPENAI_API_KEY, ANTHROPIC_API_KEY or OLLAMA_BASE_URL")
	}

	if verbose {
		for _, p := range providers {
			fmt.Fprintf(os.Stderr, "Provider: %s (%s)\n", p.Name(), p.Model())
		}
	}

	dispatcher := dispatch.NewDispatcher(
		providers,
		pipeline.New(),
		responseCache(cfg),
		worker.NewLimiter(cfg.Providers.RequestsPerSecond, cfg.Providers.Burst),
		cfg.Cache.TTL,
	)

	envelopes := dispatcher.Dispatch(ctx, q, opts)

	for _, env := range envelopes {
		fmt.Printf("━━━ %s (%s)", env.Provider, env.Model)
		if env.FromCache {
			fmt.Print(" [cached]")
		}
		fmt.Println()

		if env.Error != "" {
			fmt.Printf("  Error: %s\n\n", env.Error)
			continue
		}

		fmt.Printf("  %s\n\n", env.Response)
		if env.Analysis != nil {
			a := env.Analysis
			fmt.Printf("  Ton: %s · Sentiment: %s · Bias: %.1f/10 · Ideologi: %s (%.2f)\n\n",
				a.Tone.Primary, a.Sentiment.OverallTone,
				a.Bias.BiasScore, a.Ideology.Classification, a.Ideology.OverallScore)
		}
	}

	if askJSON != "" {
		if err := export.WriteJSON(envelopes, askJSON); err != nil {
			return fmt.Errorf("write envelopes: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", askJSON)
		}
	}

	return nil
}

// responseCache builds the layered response cache, or nil when disabled.
func responseCache(cfg *model.Config) cache.Cache {
	if noCache || !cfg.Cache.Enabled {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no home directory, caching in memory only: %v\n", err)
		return cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	return cache.NewLayeredCache(cfg.Cache.TTL, home+"/.civicai/cache", cfg.Cache.TTL)
}
