package textproc

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// languageNames covers the languages the dashboard encounters in practice;
// anything else is reported by its ISO code.
var languageNames = map[string]string{
	"sv": "Swedish",
	"en": "English",
	"no": "Norwegian",
	"da": "Danish",
	"fi": "Finnish",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
}

// EnhancedAnalyzer computes the optional lexical-statistics stage: vocabulary
// richness, sentence length, and LIX readability.
type EnhancedAnalyzer struct{}

// NewEnhancedAnalyzer creates the analyzer.
func NewEnhancedAnalyzer() *EnhancedAnalyzer {
	return &EnhancedAnalyzer{}
}

// Analyze computes lexical statistics over the text. Empty input yields a
// zero-valued result.
func (a *EnhancedAnalyzer) Analyze(text string) model.EnhancedNLP {
	prov := model.NewProvenance("civicai-enhanced-nlp", "1.0.0", "lexical-statistics")

	words := SplitWords(text)
	sentences := SplitSentences(text)
	result := model.EnhancedNLP{Provenance: prov}
	if len(words) == 0 {
		return result
	}

	types := make(map[string]bool, len(words))
	longWords := 0
	for _, w := range words {
		types[strings.ToLower(w)] = true
		if len([]rune(w)) > 6 {
			longWords++
		}
	}

	wordCount := float64(len(words))
	sentenceCount := float64(len(sentences))
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	result.TypeTokenRatio = float64(len(types)) / wordCount
	result.AvgSentenceLength = wordCount / sentenceCount
	result.LongWordRatio = float64(longWords) / wordCount
	// LIX: mean sentence length plus percentage of long words.
	result.LIX = result.AvgSentenceLength + 100*result.LongWordRatio
	switch {
	case result.LIX < 35:
		result.Readability = "easy"
	case result.LIX <= 50:
		result.Readability = "medium"
	default:
		result.Readability = "hard"
	}

	if info := whatlanggo.Detect(text); info.IsReliable() {
		result.LanguageCode = info.Lang.Iso6391()
		if name, ok := languageNames[result.LanguageCode]; ok {
			result.Language = name
		} else {
			result.Language = result.LanguageCode
		}
	}

	return result
}
