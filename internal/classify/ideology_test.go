package classify

import (
	"math"
	"testing"
)

func TestIdeology_LeftEconomicText(t *testing.T) {
	c := NewIdeologyClassifier()

	report := c.Classify("Vi måste stärka välfärden och öka omfördelningen.")

	if report.Classification != "left" {
		t.Errorf("Expected left classification, got %s (overall %f)", report.Classification, report.OverallScore)
	}
	if report.Dimensions.Economic.Score >= 0 {
		t.Errorf("Expected negative economic score, got %f", report.Dimensions.Economic.Score)
	}
	if report.Dimensions.Economic.LeftMarkers != 2 {
		t.Errorf("Expected 2 left economic markers, got %d", report.Dimensions.Economic.LeftMarkers)
	}
}

func TestIdeology_RightEconomicText(t *testing.T) {
	c := NewIdeologyClassifier()

	report := c.Classify("Lägre skatter och fri marknad skapar tillväxt.")

	if report.Classification != "right" {
		t.Errorf("Expected right classification, got %s (overall %f)", report.Classification, report.OverallScore)
	}
	if report.Dimensions.Economic.Score <= 0 {
		t.Errorf("Expected positive economic score, got %f", report.Dimensions.Economic.Score)
	}
}

func TestIdeology_NeutralText(t *testing.T) {
	c := NewIdeologyClassifier()

	report := c.Classify("Kommunfullmäktige sammanträder på torsdag klockan arton.")

	if report.Classification != "center" {
		t.Errorf("Expected center classification, got %s", report.Classification)
	}
	if report.OverallScore != 0 {
		t.Errorf("Expected zero overall score, got %f", report.OverallScore)
	}
	if len(report.Markers) != 0 {
		t.Errorf("Expected no markers, got %v", report.Markers)
	}
	if len(report.PartyAlignment) != 0 {
		t.Errorf("Expected no party suggestion without markers, got %v", report.PartyAlignment)
	}
}

func TestIdeology_ScoreBounds(t *testing.T) {
	c := NewIdeologyClassifier()
	texts := []string{
		"Välfärd, omfördelning, jämlikhet, fackförening, kollektivavtal, socialism och offentlig sektor.",
		"Fri marknad, privatisering, avreglering, skattesänkning, konkurrens, tillväxt och äganderätt.",
		"Hårdare straff, övervakning, statlig kontroll, censur och lydnad krävs, med ordning och reda.",
		"Mångfald, feminism, inkludering, antirasism och klimaträttvisa.",
	}

	for _, text := range texts {
		report := c.Classify(text)
		if report.OverallScore < -1 || report.OverallScore > 1 {
			t.Errorf("Overall score out of [-1,1] for %q: %f", text, report.OverallScore)
		}
		for _, axis := range []float64{
			report.Dimensions.Economic.Score,
			report.Dimensions.Social.Score,
			report.Dimensions.Authority.Score,
		} {
			if axis < -1 || axis > 1 {
				t.Errorf("Axis score out of [-1,1] for %q: %f", text, axis)
			}
		}
		if report.Confidence < 0 || report.Confidence > 1 {
			t.Errorf("Confidence out of [0,1] for %q: %f", text, report.Confidence)
		}
	}
}

func TestIdeology_EconomicWeighsHeaviest(t *testing.T) {
	c := NewIdeologyClassifier()

	economic := c.Classify("Fri marknad, privatisering och skattesänkning.")
	authority := c.Classify("Hårdare straff, övervakning och censur.")

	if math.Abs(economic.OverallScore) <= math.Abs(authority.OverallScore) {
		t.Errorf("Expected economic axis to dominate overall: economic %f, authority %f",
			economic.OverallScore, authority.OverallScore)
	}
}

func TestIdeology_DetailedClassification(t *testing.T) {
	c := NewIdeologyClassifier()

	progressive := c.Classify("Välfärd och omfördelning behövs, liksom mångfald, feminism och inkludering.")
	if progressive.Classification != "left" {
		t.Fatalf("Expected left, got %s (overall %f)", progressive.Classification, progressive.OverallScore)
	}
	if progressive.DetailedClassification != "progressive_left" && progressive.DetailedClassification != "far_left" {
		t.Errorf("Expected refined left label, got %s", progressive.DetailedClassification)
	}

	conservative := c.Classify("Fri marknad och skattesänkning, byggt på traditionella värderingar och kärnfamilj.")
	if conservative.Classification != "right" {
		t.Fatalf("Expected right, got %s (overall %f)", conservative.Classification, conservative.OverallScore)
	}
	if conservative.DetailedClassification != "conservative_right" && conservative.DetailedClassification != "far_right" {
		t.Errorf("Expected refined right label, got %s", conservative.DetailedClassification)
	}
}

func TestIdeology_PartyBandsOverlap(t *testing.T) {
	c := NewIdeologyClassifier()

	report := c.Classify("Fri marknad, privatisering, avreglering, skattesänkning och konkurrens ger tillväxt.")

	if len(report.PartyAlignment) == 0 {
		t.Fatal("Expected party suggestions for a clear lean")
	}
	for _, p := range report.PartyAlignment {
		if p.Affinity < 0 || p.Affinity > 1 {
			t.Errorf("Affinity out of [0,1] for %s: %f", p.Party, p.Affinity)
		}
	}
	if report.Disclaimer == "" {
		t.Error("Expected disclaimer on ideology report")
	}
}

func TestIdeology_MarkersRecorded(t *testing.T) {
	c := NewIdeologyClassifier()

	report := c.Classify("Yttrandefrihet och personlig integritet står mot övervakning.")

	if len(report.Markers) != 3 {
		t.Fatalf("Expected 3 markers, got %d: %v", len(report.Markers), report.Markers)
	}
	left, right := 0, 0
	for _, m := range report.Markers {
		switch m.Side {
		case "left":
			left++
		case "right":
			right++
		}
	}
	if left != 2 || right != 1 {
		t.Errorf("Expected 2 left and 1 right marker, got %d/%d", left, right)
	}
}

func TestIdeology_EmptyInput(t *testing.T) {
	c := NewIdeologyClassifier()

	report := c.Classify("")

	if report.Classification != "center" || report.OverallScore != 0 || report.Confidence != 0 {
		t.Errorf("Expected neutral report for empty input, got %+v", report)
	}
}
