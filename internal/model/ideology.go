package model

// IdeologyAxis names one of the three independent political dimensions.
type IdeologyAxis string

const (
	AxisEconomic  IdeologyAxis = "economic"
	AxisSocial    IdeologyAxis = "social"
	AxisAuthority IdeologyAxis = "authority"
)

// AxisScore is the normalized lean on a single ideology axis.
type AxisScore struct {
	Score          float64 `json:"score" yaml:"score"` // [-1,1]; negative leans left/progressive/libertarian
	Classification string  `json:"classification" yaml:"classification"` // "left", "center", "right"
	LeftMarkers    int     `json:"left_markers" yaml:"left_markers"`
	RightMarkers   int     `json:"right_markers" yaml:"right_markers"`
}

// IdeologyMarker records one lexicon term that contributed to an axis score.
type IdeologyMarker struct {
	Term string       `json:"term" yaml:"term"`
	Axis IdeologyAxis `json:"axis" yaml:"axis"`
	Side string       `json:"side" yaml:"side"` // "left" or "right"
}

// PartySuggestion maps the overall score into a party's approximate score band.
// Informational only: bands overlap and the mapping is explicitly approximate.
type PartySuggestion struct {
	Party    string  `json:"party" yaml:"party"`
	Affinity float64 `json:"affinity" yaml:"affinity"` // [0,1], closeness to the band midpoint
}

// IdeologyDimensions holds the three per-axis results.
type IdeologyDimensions struct {
	Economic  AxisScore `json:"economic" yaml:"economic"`
	Social    AxisScore `json:"social" yaml:"social"`
	Authority AxisScore `json:"authority" yaml:"authority"`
}

// IdeologyReport is the three-axis political-lean classification.
type IdeologyReport struct {
	OverallScore           float64            `json:"overall_score" yaml:"overall_score"` // [-1,1]
	Classification         string             `json:"classification" yaml:"classification"` // "left", "center", "right"
	DetailedClassification string             `json:"detailed_classification" yaml:"detailed_classification"`
	Confidence             float64            `json:"confidence" yaml:"confidence"` // [0,1]
	Dimensions             IdeologyDimensions `json:"dimensions" yaml:"dimensions"`
	Markers                []IdeologyMarker   `json:"markers,omitempty" yaml:"markers,omitempty"`
	PartyAlignment         []PartySuggestion  `json:"party_alignment,omitempty" yaml:"party_alignment,omitempty"`
	Disclaimer             string             `json:"disclaimer" yaml:"disclaimer"`
	Provenance             Provenance         `json:"provenance" yaml:"provenance"`
}

// NeutralIdeology returns the default report for empty or unanalyzable input.
func NeutralIdeology(prov Provenance) IdeologyReport {
	center := AxisScore{Classification: "center"}
	return IdeologyReport{
		Classification:         "center",
		DetailedClassification: "center",
		Dimensions:             IdeologyDimensions{Economic: center, Social: center, Authority: center},
		Disclaimer:             IdeologyDisclaimer,
		Provenance:             prov,
	}
}

// IdeologyDisclaimer is attached to every ideology report.
const IdeologyDisclaimer = "Approximate lexicon-based estimate, not a statistical model. Party bands overlap and are indicative only."
