package export

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Renderer writes analysis reports to files and the terminal.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. includeFooter appends the tool attribution
// line to Markdown output.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.PipelineReport, path string) error {
	return WriteJSON(report, path)
}

// RenderYAML writes the report as YAML.
func (r *Renderer) RenderYAML(report *model.PipelineReport, path string) error {
	return WriteYAML(report, path)
}

// RenderSummary prints a short result block to stdout.
func (r *Renderer) RenderSummary(report *model.PipelineReport) {
	fmt.Println()
	fmt.Printf("Tone:      %s (%.2f)\n", report.Tone.Primary, report.Tone.Confidence)
	fmt.Printf("Sentiment: %s\n", report.Sentiment.OverallTone)
	fmt.Printf("Bias:      %s (%.1f/10)\n", report.Bias.OverallBias, report.Bias.BiasScore)
	fmt.Printf("Ideology:  %s (%.2f)\n", report.Ideology.Classification, report.Ideology.OverallScore)
	fmt.Printf("Claims:    %d unique\n", report.Claims.UniqueCount)
	fmt.Println()
	fmt.Println(report.Summary)
}

// WriteJSON writes any value as indented JSON.
func WriteJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	return nil
}

// WriteYAML writes any value as YAML.
func WriteYAML(v any, path string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write YAML: %w", err)
	}

	return nil
}
