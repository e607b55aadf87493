package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// RenderMarkdown writes the report as a human-readable Markdown document.
func (r *Renderer) RenderMarkdown(report *model.PipelineReport, path string) error {
	var b strings.Builder

	b.WriteString("# Analysrapport\n\n")
	if report.Question != "" {
		fmt.Fprintf(&b, "**Fråga:** %s\n\n", report.Question)
	}
	fmt.Fprintf(&b, "**Genererad:** %s · **Textlängd:** %d tecken\n\n",
		report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"), report.TextLength)

	fmt.Fprintf(&b, "> %s\n\n", report.Summary)

	// Quality and risk
	b.WriteString("## Kvalitet\n\n")
	q := report.Insights.Quality
	fmt.Fprintf(&b, "| Objektivitet | Tydlighet | Neutralitet |\n|---|---|---|\n| %.2f | %.2f | %.2f |\n\n",
		q.Objectivity, q.Clarity, q.Neutrality)
	if flags := riskList(report.Insights.Risk); len(flags) > 0 {
		fmt.Fprintf(&b, "**Riskflaggor:** %s\n\n", strings.Join(flags, ", "))
	}

	// Tone
	b.WriteString("## Ton\n\n")
	fmt.Fprintf(&b, "Primär ton: **%s** (konfidens %.2f)\n\n", report.Tone.Primary, report.Tone.Confidence)
	if len(report.Tone.Characteristics) > 0 {
		labels := make([]string, len(report.Tone.Characteristics))
		for i, c := range report.Tone.Characteristics {
			labels[i] = string(c)
		}
		fmt.Fprintf(&b, "Karaktärsdrag: %s\n\n", strings.Join(labels, ", "))
	}

	// Bias
	b.WriteString("## Bias\n\n")
	fmt.Fprintf(&b, "Bedömning: **%s** (%.1f/10)\n\n", report.Bias.OverallBias, report.Bias.BiasScore)
	for _, finding := range report.Bias.DetectedBiases {
		fmt.Fprintf(&b, "- %s (%s): %s\n", finding.Type, finding.Severity, finding.Description)
	}
	if len(report.Bias.DetectedBiases) > 0 {
		b.WriteString("\n")
	}

	// Sentiment
	b.WriteString("## Sentiment\n\n")
	s := report.Sentiment
	fmt.Fprintf(&b, "Övergripande: **%s** · Polaritet: %s (%.3f)\n\n",
		s.OverallTone, s.VaderSentiment.Classification, s.VaderSentiment.Comparative)
	if s.Sarcasm.IsSarcastic {
		fmt.Fprintf(&b, "- Sarkasm upptäckt (konfidens %.1f)\n", s.Sarcasm.Confidence)
	}
	if s.Aggression.IsAggressive {
		fmt.Fprintf(&b, "- Aggression: %s\n", s.Aggression.Level)
	}
	if s.Empathy.IsEmpathetic {
		fmt.Fprintf(&b, "- Empati: %s\n", s.Empathy.Level)
	}
	b.WriteString("\n")

	// Ideology
	b.WriteString("## Ideologi\n\n")
	fmt.Fprintf(&b, "Klassificering: **%s** (%.2f, konfidens %.2f)\n\n",
		report.Ideology.DetailedClassification, report.Ideology.OverallScore, report.Ideology.Confidence)
	d := report.Ideology.Dimensions
	fmt.Fprintf(&b, "| Axel | Poäng | Klass |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Ekonomisk | %.2f | %s |\n", d.Economic.Score, d.Economic.Classification)
	fmt.Fprintf(&b, "| Social | %.2f | %s |\n", d.Social.Score, d.Social.Classification)
	fmt.Fprintf(&b, "| Auktoritet | %.2f | %s |\n\n", d.Authority.Score, d.Authority.Classification)
	for _, p := range report.Ideology.PartyAlignment {
		fmt.Fprintf(&b, "- %s (närhet %.2f)\n", p.Party, p.Affinity)
	}
	if len(report.Ideology.PartyAlignment) > 0 {
		b.WriteString("\n")
	}
	if report.Ideology.Disclaimer != "" {
		fmt.Fprintf(&b, "*%s*\n\n", report.Ideology.Disclaimer)
	}

	// Claims
	b.WriteString("## Faktapåståenden\n\n")
	fmt.Fprintf(&b, "%s\n\n", report.Claims.Summary)
	for _, claim := range report.Claims.Claims {
		fmt.Fprintf(&b, "- **%s**: %q — %s\n", claim.Type, claim.Claim, claim.Context)
	}
	if len(report.Claims.Claims) > 0 {
		b.WriteString("\n")
	}

	// Enhanced NLP
	if report.Enhanced != nil {
		b.WriteString("## Lexikal statistik\n\n")
		e := report.Enhanced
		fmt.Fprintf(&b, "Språk: %s · LIX: %.1f (%s) · Genomsnittlig meningslängd: %.1f ord · Typ/token: %.2f\n\n",
			e.Language, e.LIX, e.Readability, e.AvgSentenceLength, e.TypeTokenRatio)
	}

	// Timeline
	b.WriteString("## Tidslinje\n\n")
	b.WriteString("| Steg | Tid (ms) | Metod |\n|---|---|---|\n")
	for _, step := range report.Timeline {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", step.Step, step.DurationMS, step.Method)
	}
	b.WriteString("\n")

	if r.includeFooter {
		b.WriteString("---\n*Genererad av civicai — deterministisk lexikonbaserad analys.*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}

func riskList(risk model.RiskFlags) []string {
	var flags []string
	if risk.HighBias {
		flags = append(flags, "hög bias")
	}
	if risk.HighSubjectivity {
		flags = append(flags, "hög subjektivitet")
	}
	if risk.Aggressive {
		flags = append(flags, "aggressivt tonläge")
	}
	if risk.LoadedLanguage {
		flags = append(flags, "laddat språk")
	}
	if risk.UnverifiedClaims {
		flags = append(flags, "overifierade påståenden")
	}
	return flags
}
