package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/export"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	outYAML     string
	question    string
	enhancedNLP bool
	noFooter    bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a text and generate a transparency report",
	Long: `Analyze runs the full pipeline over one text:
- Preprocessing: tokenization, subjectivity, loaded language, noise
- Tone, bias, sentiment and ideology classification
- Fact-claim extraction with verification recommendation
- Optional lexical statistics (--enhanced)

The text is read from the given file, or from stdin when the file is
omitted or "-".

Example:
  civicai analyze debatt.txt
  civicai analyze debatt.txt --json report.json --md report.md --enhanced
  echo "Lägre skatter skapar tillväxt." | civicai analyze --question "Vad sa AI:n?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outYAML, "yaml", "", "output YAML path (optional)")
	analyzeCmd.Flags().StringVar(&question, "question", "", "the question the text answers (recorded in the report)")
	analyzeCmd.Flags().BoolVar(&enhancedNLP, "enhanced", false, "include the lexical-statistics stage")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	opts := model.AnalysisOptions{IncludeEnhancedNLP: enhancedNLP || cfg.Pipeline.EnhancedNLP}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d characters\n", len([]rune(text)))
	}

	report := pipeline.New().Analyze(text, question, opts)

	return renderReport(report, outJSON, outMD, outYAML, !noFooter)
}

// readInput reads the text from the file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// renderReport writes the requested output files and prints the summary.
func renderReport(report *model.PipelineReport, jsonPath, mdPath, yamlPath string, footer bool) error {
	renderer := export.NewRenderer(footer)

	if jsonPath != "" {
		if err := renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if yamlPath != "" {
		if err := renderer.RenderYAML(report, yamlPath); err != nil {
			return fmt.Errorf("render YAML: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote YAML: %s\n", yamlPath)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
