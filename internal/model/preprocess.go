package model

// Token is one word with its coarse part-of-speech tag.
type Token struct {
	Word string `json:"word" yaml:"word"`
	Tag  string `json:"tag" yaml:"tag"`
}

// Tokenization is the sentence/word split with coarse POS tags.
type Tokenization struct {
	Sentences     []string   `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	Tokens        []Token    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	SentenceCount int        `json:"sentence_count" yaml:"sentence_count"`
	WordCount     int        `json:"word_count" yaml:"word_count"`
	Provenance    Provenance `json:"provenance" yaml:"provenance"`
}

// SentenceSubjectivity is the indicator tally for one sentence.
type SentenceSubjectivity struct {
	Sentence       string `json:"sentence" yaml:"sentence"`
	Label          string `json:"label" yaml:"label"` // "subjective" or "objective"
	SubjectiveHits int    `json:"subjective_hits" yaml:"subjective_hits"`
	ObjectiveHits  int    `json:"objective_hits" yaml:"objective_hits"`
}

// SubjectivityAnalysis is the document-level subjectivity scan.
type SubjectivityAnalysis struct {
	Score               float64                `json:"score" yaml:"score"` // subjective sentences / total sentences
	SubjectiveSentences int                    `json:"subjective_sentences" yaml:"subjective_sentences"`
	TotalSentences      int                    `json:"total_sentences" yaml:"total_sentences"`
	Sentences           []SentenceSubjectivity `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	Provenance          Provenance             `json:"provenance" yaml:"provenance"`
}

// LoadedExpression is one emotionally loaded phrase found in the text.
type LoadedExpression struct {
	Category string `json:"category" yaml:"category"`
	Match    string `json:"match" yaml:"match"`
	Context  string `json:"context" yaml:"context"` // 80-char window, used for deduplication
}

// LoadedExpressions is the scan across the six loaded-language categories.
type LoadedExpressions struct {
	Expressions []LoadedExpression `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	Count       int                `json:"count" yaml:"count"`
	Provenance  Provenance         `json:"provenance" yaml:"provenance"`
}

// NoiseAnalysis measures filler-word density and yields the cleaned text.
type NoiseAnalysis struct {
	Score       float64    `json:"score" yaml:"score"` // noise words / total words
	NoiseWords  int        `json:"noise_words" yaml:"noise_words"`
	TotalWords  int        `json:"total_words" yaml:"total_words"`
	CleanedText string     `json:"cleaned_text,omitempty" yaml:"cleaned_text,omitempty"`
	Provenance  Provenance `json:"provenance" yaml:"provenance"`
}

// PreprocessReport bundles the four preprocessing passes over one text.
type PreprocessReport struct {
	Language          string               `json:"language,omitempty" yaml:"language,omitempty"` // ISO 639-1 code, "" if undetected
	Tokenization      Tokenization         `json:"tokenization" yaml:"tokenization"`
	Subjectivity      SubjectivityAnalysis `json:"subjectivity_analysis" yaml:"subjectivity_analysis"`
	LoadedExpressions LoadedExpressions    `json:"loaded_expressions" yaml:"loaded_expressions"`
	Noise             NoiseAnalysis        `json:"noise_analysis" yaml:"noise_analysis"`
}

// NeutralPreprocess returns the default report for empty or unanalyzable input.
func NeutralPreprocess(prov Provenance) PreprocessReport {
	return PreprocessReport{
		Tokenization:      Tokenization{Provenance: prov},
		Subjectivity:      SubjectivityAnalysis{Provenance: prov},
		LoadedExpressions: LoadedExpressions{Provenance: prov},
		Noise:             NoiseAnalysis{Provenance: prov},
	}
}
