package model

import "time"

// AnalysisOptions toggles optional pipeline stages.
type AnalysisOptions struct {
	IncludeEnhancedNLP bool `json:"include_enhanced_nlp" yaml:"include_enhanced_nlp"`
}

// TimelineStep is one timed stage of the pipeline's execution, recorded for
// transparency. Steps appear in execution order; DurationMS = EndTime - StartTime.
type TimelineStep struct {
	Step       string    `json:"step" yaml:"step"`
	StartTime  time.Time `json:"start_time" yaml:"start_time"`
	EndTime    time.Time `json:"end_time" yaml:"end_time"`
	DurationMS int64     `json:"duration_ms" yaml:"duration_ms"`
	Model      string    `json:"model" yaml:"model"`
	Version    string    `json:"version" yaml:"version"`
	Method     string    `json:"method" yaml:"method"`
}

// QualityIndicators are derived [0,1] scores over the whole analysis.
type QualityIndicators struct {
	Objectivity float64 `json:"objectivity" yaml:"objectivity"` // 1 - subjectivity score
	Clarity     float64 `json:"clarity" yaml:"clarity"`         // 1 - noise score
	Neutrality  float64 `json:"neutrality" yaml:"neutrality"`   // From bias and ideology extremity
}

// RiskFlags marks cross-cutting concerns the caller may want to surface.
type RiskFlags struct {
	HighBias         bool `json:"high_bias" yaml:"high_bias"`
	HighSubjectivity bool `json:"high_subjectivity" yaml:"high_subjectivity"`
	Aggressive       bool `json:"aggressive" yaml:"aggressive"`
	LoadedLanguage   bool `json:"loaded_language" yaml:"loaded_language"`
	UnverifiedClaims bool `json:"unverified_claims" yaml:"unverified_claims"`
}

// Insights are the cross-cutting derivations computed during aggregation.
type Insights struct {
	Quality QualityIndicators `json:"quality_indicators" yaml:"quality_indicators"`
	Risk    RiskFlags         `json:"risk_flags" yaml:"risk_flags"`
}

// EnhancedNLP carries the optional lexical-statistics stage.
type EnhancedNLP struct {
	Language          string     `json:"language" yaml:"language"`       // Human-readable name
	LanguageCode      string     `json:"language_code" yaml:"language_code"` // ISO 639-1
	TypeTokenRatio    float64    `json:"type_token_ratio" yaml:"type_token_ratio"`
	AvgSentenceLength float64    `json:"avg_sentence_length" yaml:"avg_sentence_length"` // Words per sentence
	LongWordRatio     float64    `json:"long_word_ratio" yaml:"long_word_ratio"`         // Share of words > 6 chars
	LIX               float64    `json:"lix" yaml:"lix"`                                 // Swedish readability index
	Readability       string     `json:"readability" yaml:"readability"`                 // "easy", "medium", "hard"
	Provenance        Provenance `json:"provenance" yaml:"provenance"`
}

// PipelineReport is the complete transparency report for one analyzed text.
// It is created fresh per invocation and never mutated after return.
type PipelineReport struct {
	Question    string           `json:"question,omitempty" yaml:"question,omitempty"`
	TextLength  int              `json:"text_length" yaml:"text_length"`
	Preprocess  PreprocessReport `json:"preprocessing" yaml:"preprocessing"`
	Tone        ToneResult       `json:"tone" yaml:"tone"`
	Bias        BiasReport       `json:"bias" yaml:"bias"`
	Sentiment   SentimentReport  `json:"sentiment" yaml:"sentiment"`
	Ideology    IdeologyReport   `json:"ideology" yaml:"ideology"`
	Claims      ClaimReport      `json:"fact_claims" yaml:"fact_claims"`
	Enhanced    *EnhancedNLP     `json:"enhanced_nlp,omitempty" yaml:"enhanced_nlp,omitempty"`
	Timeline    []TimelineStep   `json:"timeline" yaml:"timeline"`
	Insights    Insights         `json:"insights" yaml:"insights"`
	Summary     string           `json:"summary" yaml:"summary"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
}
