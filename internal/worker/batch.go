package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Analyzer runs one text through the analysis pipeline.
type Analyzer interface {
	Analyze(text, question string, opts model.AnalysisOptions) *model.PipelineReport
}

// AnalyzeJob analyzes one labeled text.
type AnalyzeJob struct {
	Label    string
	Text     string
	Question string
	Options  model.AnalysisOptions
	Analyzer Analyzer
}

// Execute runs the analysis unless the pool context is already cancelled.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return &AnalyzeResult{Label: j.Label, Err: ctx.Err()}
	default:
	}

	return &AnalyzeResult{
		Label:  j.Label,
		Report: j.Analyzer.Analyze(j.Text, j.Question, j.Options),
	}
}

// AnalyzeResult is the outcome of one analysis job.
type AnalyzeResult struct {
	Label  string
	Report *model.PipelineReport
	Err    error
}

// GetError returns the error from the analysis job.
func (r *AnalyzeResult) GetError() error {
	return r.Err
}

// BatchItem is one labeled input text.
type BatchItem struct {
	Label string
	Text  string
}

// BatchProcessor analyzes many texts concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
	options     model.AnalysisOptions
}

// NewBatchProcessor creates a batch processor with the given fan-out width.
func NewBatchProcessor(analyzer Analyzer, concurrency int, options model.AnalysisOptions) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		options:     options,
	}
}

// ProcessTexts analyzes the items concurrently. Results come back in
// completion order; use the label to correlate.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, items []BatchItem) []*AnalyzeResult {
	if len(items) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, item := range items {
		pool.Submit(&AnalyzeJob{
			Label:    item.Label,
			Text:     item.Text,
			Options:  b.options,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	out := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		out[i] = result.(*AnalyzeResult)
	}

	return out
}

// ProcessFile reads texts from a file (one per line) and analyzes them
// concurrently. Labels are 1-based line positions.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	texts, err := ReadTextsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read texts: %w", err)
	}

	items := make([]BatchItem, len(texts))
	for i, text := range texts {
		items[i] = BatchItem{Label: fmt.Sprintf("line-%d", i+1), Text: text}
	}

	return b.ProcessTexts(ctx, items), nil
}

// ReadTextsFromFile reads one text per line, skipping blanks and # comments.
func ReadTextsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var texts []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return texts, nil
}
