package model

// LexiconSentiment is the word-level polarity score over a text.
type LexiconSentiment struct {
	Score          int      `json:"score" yaml:"score"`                   // positive hits - negative hits
	Comparative    float64  `json:"comparative" yaml:"comparative"`       // Score normalized by word count
	Classification string   `json:"classification" yaml:"classification"` // "positive", "negative", "neutral"
	Intensity      string   `json:"intensity" yaml:"intensity"`           // "strong", "moderate", "mild"
	PositiveWords  []string `json:"positive_words,omitempty" yaml:"positive_words,omitempty"`
	NegativeWords  []string `json:"negative_words,omitempty" yaml:"negative_words,omitempty"`
}

// SarcasmResult is the weighted pattern scan for sarcastic register.
type SarcasmResult struct {
	IsSarcastic bool     `json:"is_sarcastic" yaml:"is_sarcastic"`
	Score       int      `json:"score" yaml:"score"`
	Confidence  float64  `json:"confidence" yaml:"confidence"` // min(score/10, 1)
	Indicators  []string `json:"indicators,omitempty" yaml:"indicators,omitempty"` // Category names that fired
}

// AggressionResult is the weighted lexical scan for aggressive register.
type AggressionResult struct {
	IsAggressive bool     `json:"is_aggressive" yaml:"is_aggressive"`
	Score        int      `json:"score" yaml:"score"`
	Level        string   `json:"level" yaml:"level"` // "none", "low", "medium", "high"
	Indicators   []string `json:"indicators,omitempty" yaml:"indicators,omitempty"`
}

// EmpathyResult is the weighted lexical scan for empathetic register.
type EmpathyResult struct {
	IsEmpathetic bool     `json:"is_empathetic" yaml:"is_empathetic"`
	Score        int      `json:"score" yaml:"score"`
	Level        string   `json:"level" yaml:"level"` // "none", "low", "medium", "high"
	Indicators   []string `json:"indicators,omitempty" yaml:"indicators,omitempty"`
}

// SentimentReport bundles the polarity scorer with its three sub-detectors.
// The JSON field names match the dashboard's existing report schema.
type SentimentReport struct {
	VaderSentiment LexiconSentiment `json:"vader_sentiment" yaml:"vader_sentiment"`
	Sarcasm        SarcasmResult    `json:"sarcasm_detection" yaml:"sarcasm_detection"`
	Aggression     AggressionResult `json:"aggression_detection" yaml:"aggression_detection"`
	Empathy        EmpathyResult    `json:"empathy_detection" yaml:"empathy_detection"`
	OverallTone    string           `json:"overall_tone" yaml:"overall_tone"`
	Provenance     Provenance       `json:"provenance" yaml:"provenance"`
}

// NeutralSentiment returns the default report for empty or unanalyzable input.
func NeutralSentiment(prov Provenance) SentimentReport {
	return SentimentReport{
		VaderSentiment: LexiconSentiment{Classification: "neutral", Intensity: "mild"},
		Sarcasm:        SarcasmResult{},
		Aggression:     AggressionResult{Level: "none"},
		Empathy:        EmpathyResult{Level: "none"},
		OverallTone:    "neutral",
		Provenance:     prov,
	}
}
