package pipeline

import (
	"math"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Thresholds for the cross-cutting risk flags.
const (
	highBiasThreshold         = 5.0 // bias score above this flags high_bias
	highSubjectivityThreshold = 0.6
)

// deriveInsights computes the quality indicators and risk flags from the
// already-populated stage results. It reads the report but never mutates it.
func deriveInsights(report *model.PipelineReport) model.Insights {
	return model.Insights{
		Quality: model.QualityIndicators{
			Objectivity: clamp01(1 - report.Preprocess.Subjectivity.Score),
			Clarity:     clamp01(1 - report.Preprocess.Noise.Score),
			Neutrality:  neutrality(report.Bias.BiasScore, report.Ideology.OverallScore),
		},
		Risk: model.RiskFlags{
			HighBias:         report.Bias.BiasScore > highBiasThreshold,
			HighSubjectivity: report.Preprocess.Subjectivity.Score > highSubjectivityThreshold,
			Aggressive:       report.Sentiment.Aggression.IsAggressive,
			LoadedLanguage:   report.Preprocess.LoadedExpressions.Count > 0,
			UnverifiedClaims: report.Claims.RecommendVerification,
		},
	}
}

// neutrality starts at 1 and loses up to 0.5 each for bias magnitude and
// ideological extremity.
func neutrality(biasScore, ideologyScore float64) float64 {
	return clamp01(1 - biasScore/10*0.5 - math.Abs(ideologyScore)*0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
