package textproc

import (
	"strings"
	"testing"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

func testProv() model.Provenance {
	return model.NewProvenance("test", "0", "test")
}

func TestSplitSentences_Basic(t *testing.T) {
	text := "Första meningen är här. Andra meningen följer! Är detta den tredje?"

	sentences := SplitSentences(text)

	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[1] != "Andra meningen följer!" {
		t.Errorf("Unexpected second sentence: '%s'", sentences[1])
	}
}

func TestSplitSentences_TrailingWithoutTerminator(t *testing.T) {
	sentences := SplitSentences("En mening. Och en svans utan punkt")

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	if sentences[1] != "Och en svans utan punkt" {
		t.Errorf("Expected trailing fragment kept, got '%s'", sentences[1])
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Errorf("Expected no sentences, got %v", got)
	}
}

func TestSplitWords_SwedishLetters(t *testing.T) {
	words := SplitWords("Välfärden stärks, säger hon.")

	if len(words) != 4 {
		t.Fatalf("Expected 4 words, got %d: %v", len(words), words)
	}
	if words[0] != "Välfärden" {
		t.Errorf("Expected 'Välfärden' kept intact, got '%s'", words[0])
	}
}

func TestTagWord_PriorityOrder(t *testing.T) {
	cases := map[string]string{
		"jag":       TagPronoun,
		"och":       TagConjunction,
		"enligt":    TagPreposition,
		"denna":     TagDeterminer,
		"2024":      TagNumber,
		"regering":  TagNoun, // open-class default
		"fördelning": TagNoun,
		"analysera": TagVerb,
		"politisk":  TagAdjective,
		"möjligtvis": TagAdverb,
		"quickly":   TagAdverb,
	}
	for word, want := range cases {
		if got := TagWord(word); got != want {
			t.Errorf("TagWord(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestSubjectivity_MixedDocument(t *testing.T) {
	s := NewSubjectivityScanner()
	sentences := []string{
		"Jag tycker att detta är fantastiskt bra.",     // subjective indicators
		"Enligt rapporten ökade antalet med 12 procent.", // objective indicators
	}

	result := s.Scan(sentences, testProv())

	if result.TotalSentences != 2 {
		t.Fatalf("Expected 2 scored sentences, got %d", result.TotalSentences)
	}
	if result.Sentences[0].Label != "subjective" {
		t.Errorf("Expected first sentence subjective, got %s (%d/%d hits)",
			result.Sentences[0].Label, result.Sentences[0].SubjectiveHits, result.Sentences[0].ObjectiveHits)
	}
	if result.Sentences[1].Label != "objective" {
		t.Errorf("Expected second sentence objective, got %s", result.Sentences[1].Label)
	}
	if result.Score != 0.5 {
		t.Errorf("Expected score 0.5, got %f", result.Score)
	}
}

func TestSubjectivity_NoIndicatorsDefaultsSubjective(t *testing.T) {
	s := NewSubjectivityScanner()

	result := s.Scan([]string{"Katten satt kvar hela dagen där borta."}, testProv())

	if result.SubjectiveSentences != 1 {
		t.Error("Expected indicator-free sentence to default to subjective")
	}
}

func TestSubjectivity_ShortSentencesSkipped(t *testing.T) {
	s := NewSubjectivityScanner()

	result := s.Scan([]string{"Ja.", "Nej!"}, testProv())

	if result.TotalSentences != 0 {
		t.Errorf("Expected short sentences skipped, got %d scored", result.TotalSentences)
	}
	if result.Score != 0 {
		t.Errorf("Expected zero score, got %f", result.Score)
	}
}

func TestSubjectivity_RuneLengthFilter(t *testing.T) {
	s := NewSubjectivityScanner()

	// 10 runes but 12 bytes: multibyte letters must not defeat the filter.
	result := s.Scan([]string{"Så är det."}, testProv())

	if result.TotalSentences != 0 {
		t.Errorf("Expected 10-rune sentence skipped, got %d scored", result.TotalSentences)
	}
}

func TestLoadedExpressions_CategoriesAndDedup(t *testing.T) {
	text := "Detta är en fantastisk reform. Kritikerna varnar för en akut kris."

	result := ScanLoadedExpressions(text, testProv())

	if result.Count < 2 {
		t.Fatalf("Expected at least 2 loaded expressions, got %d", result.Count)
	}

	categories := make(map[string]bool)
	for _, e := range result.Expressions {
		categories[e.Category] = true
		if len([]rune(e.Context)) > 2*contextRadius+len([]rune(e.Match)) {
			t.Errorf("Context window too wide for match '%s'", e.Match)
		}
	}
	if !categories["strong_positive"] {
		t.Error("Expected a strong_positive finding")
	}
	if !categories["alarmist"] {
		t.Error("Expected an alarmist finding")
	}
}

func TestLoadedExpressions_DuplicateContextReportedOnce(t *testing.T) {
	// Both regex hits share the same window, so only the first survives.
	text := "kris kris"

	result := ScanLoadedExpressions(text, testProv())

	if result.Count != 1 {
		t.Errorf("Expected 1 deduplicated finding, got %d", result.Count)
	}
}

func TestLoadedExpressions_CategoriesDedupIndependently(t *testing.T) {
	// The windows collapse to the same whole-text context, but the matches
	// belong to different categories and must both survive.
	text := "fantastisk kris"

	result := ScanLoadedExpressions(text, testProv())

	if result.Count != 2 {
		t.Fatalf("Expected findings from both categories, got %d", result.Count)
	}
}

func TestReduceNoise_ScoreAndCleanedText(t *testing.T) {
	text := "Det är typ en bra idé alltså"

	result := ReduceNoise(text, testProv())

	if result.NoiseWords != 2 {
		t.Fatalf("Expected 2 noise words, got %d", result.NoiseWords)
	}
	if result.TotalWords != 7 {
		t.Errorf("Expected 7 total words, got %d", result.TotalWords)
	}
	if result.CleanedText != "Det är en bra idé" {
		t.Errorf("Unexpected cleaned text: '%s'", result.CleanedText)
	}
}

func TestReduceNoise_MultiWordFiller(t *testing.T) {
	result := ReduceNoise("It is sort of a plan you know", testProv())

	if result.NoiseWords != 4 {
		t.Errorf("Expected 4 noise words from two phrases, got %d", result.NoiseWords)
	}
	if result.CleanedText != "It is a plan" {
		t.Errorf("Unexpected cleaned text: '%s'", result.CleanedText)
	}
}

func TestReduceNoise_Empty(t *testing.T) {
	result := ReduceNoise("", testProv())

	if result.Score != 0 || result.TotalWords != 0 {
		t.Error("Expected zero-valued noise analysis for empty input")
	}
}

func TestPreprocessor_EmptyInput(t *testing.T) {
	p := NewPreprocessor()

	report := p.Process("")

	if report.Tokenization.WordCount != 0 {
		t.Error("Expected zero word count")
	}
	if report.Subjectivity.Score != 0 {
		t.Error("Expected zero subjectivity score")
	}
	if report.Noise.Score != 0 {
		t.Error("Expected zero noise score")
	}
	if report.LoadedExpressions.Count != 0 {
		t.Error("Expected no loaded expressions")
	}
}

func TestPreprocessor_SwedishLanguageDetected(t *testing.T) {
	p := NewPreprocessor()

	report := p.Process("Vi måste stärka välfärden och skolan eftersom samhället behöver en trygg gemensam grund att stå på.")

	if report.Language != "sv" {
		t.Errorf("Expected language 'sv', got '%s'", report.Language)
	}
}

func TestPreprocessor_Provenance(t *testing.T) {
	p := NewPreprocessor()

	report := p.Process("En mening som är tillräckligt lång för analys.")

	for name, prov := range map[string]model.Provenance{
		"tokenization": report.Tokenization.Provenance,
		"subjectivity": report.Subjectivity.Provenance,
		"loaded":       report.LoadedExpressions.Provenance,
		"noise":        report.Noise.Provenance,
	} {
		if prov.Model == "" || prov.Method == "" || prov.Timestamp.IsZero() {
			t.Errorf("Incomplete provenance for %s: %+v", name, prov)
		}
	}
}

func TestEnhancedAnalyzer_Readability(t *testing.T) {
	a := NewEnhancedAnalyzer()

	easy := a.Analyze("En hund går här. Den är glad. Vi ser den.")
	if easy.Readability != "easy" {
		t.Errorf("Expected easy readability, got %s (LIX %.1f)", easy.Readability, easy.LIX)
	}

	hard := a.Analyze("Samhällsutvecklingens konsekvensanalyser förutsätter myndighetsgemensamma implementeringsstrategier beträffande välfärdssystemens finansieringsmodeller.")
	if hard.Readability != "hard" {
		t.Errorf("Expected hard readability, got %s (LIX %.1f)", hard.Readability, hard.LIX)
	}
}

func TestEnhancedAnalyzer_Empty(t *testing.T) {
	a := NewEnhancedAnalyzer()

	result := a.Analyze("")

	if result.TypeTokenRatio != 0 || result.LIX != 0 {
		t.Error("Expected zero-valued statistics for empty input")
	}
}

func TestEnhancedAnalyzer_TypeTokenRatio(t *testing.T) {
	a := NewEnhancedAnalyzer()

	result := a.Analyze("ord ord ord ord")

	if result.TypeTokenRatio != 0.25 {
		t.Errorf("Expected TTR 0.25, got %f", result.TypeTokenRatio)
	}
	if !strings.Contains("easy medium hard", result.Readability) {
		t.Errorf("Unexpected readability label %q", result.Readability)
	}
}
