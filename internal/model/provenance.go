package model

import "time"

// Provenance records which method produced an analysis field, for auditability.
// It is created once per stage invocation and never mutated afterwards.
type Provenance struct {
	Model     string    `json:"model" yaml:"model"`           // Component identifier (e.g. "civicai-tone")
	Version   string    `json:"version" yaml:"version"`       // Component version
	Method    string    `json:"method" yaml:"method"`         // Scoring method (e.g. "keyword-scoring")
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`   // When the stage ran (UTC)
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"` // Set when the stage degraded to its neutral default
}

// NewProvenance creates a provenance record stamped with the current UTC time.
func NewProvenance(model, version, method string) Provenance {
	return Provenance{
		Model:     model,
		Version:   version,
		Method:    method,
		Timestamp: time.Now().UTC(),
	}
}
