package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

func sampleReport() *model.PipelineReport {
	return &model.PipelineReport{
		Question:   "Vad tycker du?",
		TextLength: 42,
		Tone:       model.ToneResult{Primary: model.ToneAnalytical, Confidence: 0.72},
		Bias: model.BiasReport{
			OverallBias: "detected",
			BiasScore:   4,
			DetectedBiases: []model.BiasFinding{
				{Type: model.BiasPolitical, Severity: model.SeverityMedium, Description: "politisk slagsida"},
			},
		},
		Sentiment: model.SentimentReport{
			OverallTone:    "negative",
			VaderSentiment: model.LexiconSentiment{Classification: "negative", Comparative: -0.1},
		},
		Ideology: model.IdeologyReport{
			Classification:         "left",
			DetailedClassification: "left",
			OverallScore:           -0.33,
			Disclaimer:             model.IdeologyDisclaimer,
		},
		Claims: model.ClaimReport{
			Claims:      []model.Claim{{Type: model.ClaimStatistical, Claim: "25%", Context: "ökade med 25%"}},
			UniqueCount: 1,
			TotalFound:  1,
			Summary:     "Hittade 1 unikt faktapåstående: 1 statistiskt.",
		},
		Timeline: []model.TimelineStep{
			{Step: "preprocessing", DurationMS: 1, Method: "sentence-word-tokenization"},
		},
		Summary:     "Sammanfattning.",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := NewRenderer(false)

	if err := r.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded model.PipelineReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded.Ideology.Classification != "left" {
		t.Errorf("Expected left ideology after round trip, got %s", decoded.Ideology.Classification)
	}
	if decoded.Sentiment.VaderSentiment.Classification != "negative" {
		t.Error("Expected vader_sentiment field to survive round trip")
	}
}

func TestRenderYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	r := NewRenderer(false)

	if err := r.RenderYAML(sampleReport(), path); err != nil {
		t.Fatalf("RenderYAML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded model.PipelineReport
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded.Claims.UniqueCount != 1 {
		t.Errorf("Expected 1 unique claim after round trip, got %d", decoded.Claims.UniqueCount)
	}
}

func TestRenderMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	r := NewRenderer(true)

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Analysrapport",
		"**Fråga:** Vad tycker du?",
		"## Ideologi",
		"politisk slagsida",
		"civicai",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}
}

func TestRenderMarkdown_ToleratesSparseReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	r := NewRenderer(false)

	// A near-empty report (no findings, no claims, no enhanced stage)
	// must still render.
	report := &model.PipelineReport{Summary: "No text to analyze."}
	if err := r.RenderMarkdown(report, path); err != nil {
		t.Fatalf("RenderMarkdown failed on sparse report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "No text to analyze.") {
		t.Error("Expected sparse report summary in markdown")
	}
	if strings.Contains(string(data), "civicai") {
		t.Error("Expected no footer when disabled")
	}
}
