package classify

import (
	"strings"
	"testing"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

func TestToneClassifier_Analytical(t *testing.T) {
	c := NewToneClassifier()

	result := c.Classify("Analysen bygger på data från en studie, och slutsatsen följer därför av jämförelsen.")

	if result.Primary != model.ToneAnalytical {
		t.Errorf("Expected analytical tone, got %s", result.Primary)
	}
	if result.Confidence < 0.5 || result.Confidence > 0.95 {
		t.Errorf("Confidence out of bounds: %f", result.Confidence)
	}
}

func TestToneClassifier_EmpatheticQuestionBonus(t *testing.T) {
	c := NewToneClassifier()

	result := c.Classify("Hur känns det? Vad behöver du? Finns det något mer?")

	if result.Primary != model.ToneEmpathetic {
		t.Errorf("Expected empathetic tone from question bonus, got %s", result.Primary)
	}
}

func TestToneClassifier_ListMarkersBoostAnalytical(t *testing.T) {
	c := NewToneClassifier()
	text := "Punkterna nedan:\n- första saken\n- andra saken\n- tredje saken\n- fjärde saken"

	result := c.Classify(text)

	if result.Primary != model.ToneAnalytical {
		t.Errorf("Expected analytical tone from list markers, got %s", result.Primary)
	}
}

func TestToneClassifier_NeutralDefault(t *testing.T) {
	c := NewToneClassifier()

	result := c.Classify("Huset ligger vid vägen bredvid sjön.")

	if result.Primary != model.ToneNeutral {
		t.Errorf("Expected neutral default, got %s", result.Primary)
	}
	if result.Confidence != 0.5 {
		t.Errorf("Expected floor confidence 0.5 for keyword-free text, got %f", result.Confidence)
	}
}

func TestToneClassifier_EmptyInput(t *testing.T) {
	c := NewToneClassifier()

	result := c.Classify("")

	if result.Primary != model.ToneNeutral {
		t.Errorf("Expected neutral for empty input, got %s", result.Primary)
	}
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence for empty input, got %f", result.Confidence)
	}
}

func TestToneClassifier_CharacteristicsTopThree(t *testing.T) {
	c := NewToneClassifier()
	text := "Analysen och datan visar problem och brister, men det finns hopp, en möjlighet och en lösning. Kanske fungerar det, möjligen redan idag, eftersom studien stöder slutsatsen."

	result := c.Classify(text)

	if len(result.Characteristics) == 0 || len(result.Characteristics) > 3 {
		t.Fatalf("Expected 1-3 characteristics, got %d", len(result.Characteristics))
	}
	if result.Characteristics[0] != result.Primary {
		t.Errorf("Expected strongest characteristic %s to equal primary, got %s",
			result.Primary, result.Characteristics[0])
	}
}

func TestToneClassifier_ConfidenceGrowsWithLength(t *testing.T) {
	c := NewToneClassifier()

	short := c.Classify("Analysen visar resultat.")
	long := c.Classify(strings.Repeat("Analysen visar resultat och data ger en slutsats. ", 30))

	if long.Confidence <= short.Confidence {
		t.Errorf("Expected longer dominant text to score higher confidence: short %f, long %f",
			short.Confidence, long.Confidence)
	}
}

func TestToneClassifier_Determinism(t *testing.T) {
	c := NewToneClassifier()
	text := "Analysen visar data. Kanske finns det problem? Vi förstår oron."

	first := c.Classify(text)
	for i := 0; i < 5; i++ {
		again := c.Classify(text)
		if again.Primary != first.Primary || again.Confidence != first.Confidence {
			t.Fatalf("Non-deterministic result on run %d: %+v vs %+v", i, again, first)
		}
	}
}
