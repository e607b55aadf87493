package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/export"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/pipeline"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple texts from a file in parallel",
	Long: `Batch analyzes many texts concurrently:
- Read texts from the input file (one per line, # lines are comments)
- Analyze them in parallel with a configurable worker count
- Write one JSON and one Markdown report per text

Example:
  civicai batch svar.txt
  civicai batch svar.txt --concurrency 8 --output-dir ./rapporter --enhanced`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./civicai-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&enhancedNLP, "enhanced", false, "include the lexical-statistics stage")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg := loadConfig()
	opts := model.AnalysisOptions{IncludeEnhancedNLP: enhancedNLP || cfg.Pipeline.EnhancedNLP}

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n\n", outputDir)

	processor := worker.NewBatchProcessor(pipeline.New(), concurrency, opts)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	renderer := export.NewRenderer(!noFooter)
	succeeded, failed := 0, 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Label, result.Err)
			continue
		}

		jsonPath := filepath.Join(outputDir, result.Label+".json")
		mdPath := filepath.Join(outputDir, result.Label+".md")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Label, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Label, err)
			continue
		}

		succeeded++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s\n", result.Label, jsonPath)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d analyzed, %d failed\n", succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d texts failed", failed, len(results))
	}
	return nil
}
