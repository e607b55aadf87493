package model

// BiasType classifies the kind of bias a check looks for.
type BiasType string

const (
	BiasPolitical    BiasType = "political"
	BiasCommercial   BiasType = "commercial"
	BiasCultural     BiasType = "cultural"
	BiasConfirmation BiasType = "confirmation"
	BiasRecency      BiasType = "recency"
)

// Severity grades how strongly a bias check fired.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SeverityWeight maps a severity to its contribution to the overall bias score.
func SeverityWeight(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

// BiasFinding is one bias check that fired.
type BiasFinding struct {
	Type        BiasType `json:"type" yaml:"type"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Direction   string   `json:"direction,omitempty" yaml:"direction,omitempty"` // e.g. "left", "right", "western"
	Description string   `json:"description" yaml:"description"`
	Score       int      `json:"score" yaml:"score"` // Raw check score, for transparency
}

// BiasReport aggregates all five bias checks over one text.
type BiasReport struct {
	OverallBias    string        `json:"overall_bias" yaml:"overall_bias"` // "minimal" or "detected"
	BiasScore      float64       `json:"bias_score" yaml:"bias_score"`     // [0,10]
	DetectedBiases []BiasFinding `json:"detected_biases,omitempty" yaml:"detected_biases,omitempty"` // Sorted by severity, descending
	Provenance     Provenance    `json:"provenance" yaml:"provenance"`
}

// NeutralBias returns the default report for empty or unanalyzable input.
func NeutralBias(prov Provenance) BiasReport {
	return BiasReport{
		OverallBias: "minimal",
		BiasScore:   0,
		Provenance:  prov,
	}
}
