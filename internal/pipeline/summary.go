package pipeline

import (
	"fmt"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// summarize builds the one-paragraph human-readable summary from the stage
// results. Deterministic: the same report always yields the same text.
func summarize(report *model.PipelineReport) string {
	if report.TextLength == 0 {
		return "No text to analyze."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "The text strikes a %s tone with %s sentiment.",
		report.Tone.Primary, report.Sentiment.OverallTone)

	switch report.Bias.OverallBias {
	case "detected":
		fmt.Fprintf(&b, " Bias detected (score %.1f/10, %d finding(s)).",
			report.Bias.BiasScore, len(report.Bias.DetectedBiases))
	default:
		b.WriteString(" Bias is minimal.")
	}

	if report.Ideology.Classification == "center" {
		b.WriteString(" No clear ideological lean.")
	} else {
		fmt.Fprintf(&b, " Ideological lean: %s (%.2f).",
			report.Ideology.Classification, report.Ideology.OverallScore)
	}

	switch {
	case report.Claims.UniqueCount == 0:
		b.WriteString(" No verifiable fact claims found.")
	case report.Claims.RecommendVerification:
		fmt.Fprintf(&b, " %d fact claim(s) found; verification recommended.",
			report.Claims.UniqueCount)
	default:
		fmt.Fprintf(&b, " %d fact claim(s) found.", report.Claims.UniqueCount)
	}

	return b.String()
}
