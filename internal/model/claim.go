package model

// ClaimType categorizes the nature of a verifiable claim.
type ClaimType string

const (
	ClaimStatistical ClaimType = "statistical" // Percentages and proportions
	ClaimTemporal    ClaimType = "temporal"    // Years, dates, periods
	ClaimNumerical   ClaimType = "numerical"   // Quantities and amounts
	ClaimScientific  ClaimType = "scientific"  // References to research or studies
	ClaimHistorical  ClaimType = "historical"  // Founding, invention, discovery
	ClaimDefinitive  ClaimType = "definitive"  // Absolute assertions ("always", "never")
)

// ClaimPriority ranks claim types for truncation and sorting; higher is kept first.
func ClaimPriority(t ClaimType) int {
	switch t {
	case ClaimStatistical:
		return 6
	case ClaimScientific:
		return 5
	case ClaimNumerical:
		return 4
	case ClaimHistorical:
		return 3
	case ClaimTemporal:
		return 2
	default:
		return 1
	}
}

// Claim is a text span flagged as factually verifiable (but not verified).
type Claim struct {
	Type        ClaimType `json:"type" yaml:"type"`
	Description string    `json:"description" yaml:"description"` // What kind of assertion this is
	Claim       string    `json:"claim" yaml:"claim"`             // The matched span itself
	Context     string    `json:"context" yaml:"context"`         // Surrounding text, at most 100 chars
}

// ClaimReport is the deduplicated, prioritized result of claim extraction.
type ClaimReport struct {
	Claims                []Claim    `json:"claims,omitempty" yaml:"claims,omitempty"` // At most 5, priority-descending
	TotalFound            int        `json:"total_found" yaml:"total_found"`           // Before deduplication
	UniqueCount           int        `json:"unique_count" yaml:"unique_count"`         // After deduplication
	RecommendVerification bool       `json:"recommend_verification" yaml:"recommend_verification"`
	Summary               string     `json:"summary" yaml:"summary"`
	Provenance            Provenance `json:"provenance" yaml:"provenance"`
}

// NeutralClaims returns the default report for empty or unanalyzable input.
func NeutralClaims(prov Provenance) ClaimReport {
	return ClaimReport{
		Summary:    "No verifiable claims found.",
		Provenance: prov,
	}
}
