package model

// ToneLabel classifies the dominant register of a text.
type ToneLabel string

const (
	ToneAnalytical ToneLabel = "analytical"
	ToneEmpathetic ToneLabel = "empathetic"
	ToneAssertive  ToneLabel = "assertive"
	ToneOptimistic ToneLabel = "optimistic"
	ToneCritical   ToneLabel = "critical"
	ToneCautious   ToneLabel = "cautious"
	ToneNeutral    ToneLabel = "neutral"
)

// ToneResult is the outcome of the keyword-based tone classification.
type ToneResult struct {
	Primary         ToneLabel   `json:"primary" yaml:"primary"`
	Confidence      float64     `json:"confidence" yaml:"confidence"` // [0,1]; [0.5,0.95] for non-empty input
	Characteristics []ToneLabel `json:"characteristics,omitempty" yaml:"characteristics,omitempty"` // Up to 3, strongest first
	Provenance      Provenance  `json:"provenance" yaml:"provenance"`
}

// NeutralTone returns the default result for empty or unanalyzable input.
func NeutralTone(prov Provenance) ToneResult {
	return ToneResult{
		Primary:    ToneNeutral,
		Confidence: 0,
		Provenance: prov,
	}
}
