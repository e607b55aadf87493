package extract

import (
	"strings"
	"testing"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

func TestClaimExtractor_StatisticalClaim(t *testing.T) {
	e := NewClaimExtractor()

	report := e.Extract("Ungefär 50% av befolkningen berörs av förslaget.")

	if report.UniqueCount != 1 {
		t.Fatalf("Expected 1 unique claim, got %d", report.UniqueCount)
	}
	if report.Claims[0].Type != model.ClaimStatistical {
		t.Errorf("Expected statistical claim, got %s", report.Claims[0].Type)
	}
	if !strings.Contains(report.Claims[0].Claim, "50%") {
		t.Errorf("Expected matched span to contain '50%%', got '%s'", report.Claims[0].Claim)
	}
}

func TestClaimExtractor_RepeatedSentenceDeduplicates(t *testing.T) {
	e := NewClaimExtractor()
	sentence := "Hela 50% av befolkningen håller med."
	text := sentence + " " + sentence + " " + sentence

	report := e.Extract(text)

	if report.TotalFound != 3 {
		t.Errorf("Expected 3 raw matches, got %d", report.TotalFound)
	}
	if report.UniqueCount != 1 {
		t.Errorf("Expected exactly 1 unique claim, got %d", report.UniqueCount)
	}
	if len(report.Claims) != 1 || report.Claims[0].Type != model.ClaimStatistical {
		t.Errorf("Expected a single statistical claim, got %+v", report.Claims)
	}
}

func TestClaimExtractor_TypeCoverage(t *testing.T) {
	cases := map[string]model.ClaimType{
		"Stödet ökade med 12 procent under året.":          model.ClaimStatistical,
		"Forskning visar att metoden fungerar.":            model.ClaimScientific,
		"Satsningen kostar 4 miljarder kronor.":            model.ClaimNumerical,
		"Universitetet grundades för länge sedan.":         model.ClaimHistorical,
		"Reformen genomfördes under 1990-talet i Sverige.": model.ClaimTemporal,
		"Detta kommer garanterat att lyckas.":              model.ClaimDefinitive,
	}

	e := NewClaimExtractor()
	for text, want := range cases {
		report := e.Extract(text)
		if report.UniqueCount == 0 {
			t.Errorf("Expected a claim in %q, got none", text)
			continue
		}
		found := false
		for _, c := range report.Claims {
			if c.Type == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %s claim in %q, got %+v", want, text, report.Claims)
		}
	}
}

func TestClaimExtractor_PrioritySortAndTruncation(t *testing.T) {
	e := NewClaimExtractor()
	text := "Detta gäller alltid här. " +
		"Reformen infördes under 2019 enligt plan. " +
		"Projektet var aldrig billigt någonsin. " +
		"Kostnaden blev 3 miljarder kronor totalt. " +
		"Forskning visar att effekten består även senare. " +
		"Andelen ökade till 25 procent det året."

	report := e.Extract(text)

	if len(report.Claims) != 5 {
		t.Fatalf("Expected truncation to 5 claims, got %d", len(report.Claims))
	}
	for i := 1; i < len(report.Claims); i++ {
		prev := model.ClaimPriority(report.Claims[i-1].Type)
		cur := model.ClaimPriority(report.Claims[i].Type)
		if cur > prev {
			t.Errorf("Claims not priority-descending at %d: %s before %s",
				i, report.Claims[i-1].Type, report.Claims[i].Type)
		}
	}
	if report.Claims[0].Type != model.ClaimStatistical {
		t.Errorf("Expected statistical claim first, got %s", report.Claims[0].Type)
	}
}

func TestClaimExtractor_RecommendVerification(t *testing.T) {
	e := NewClaimExtractor()

	few := e.Extract("Stödet ökade med 12 procent under året.")
	if few.RecommendVerification {
		t.Error("Expected no verification recommendation for a single claim")
	}

	many := e.Extract("Stödet var 12 procent i fjol. Forskning visar att trenden håller i sig. Kostnaden är 2 miljarder kronor per år.")
	if !many.RecommendVerification {
		t.Errorf("Expected verification recommendation for %d claims", many.UniqueCount)
	}
}

func TestClaimExtractor_ContextBounds(t *testing.T) {
	e := NewClaimExtractor()
	long := strings.Repeat("omständlig inledning ", 10) + "hela 75 procent av väljarna" + strings.Repeat(" och en lång avslutning", 10) + "."

	report := e.Extract(long)

	if report.UniqueCount == 0 {
		t.Fatal("Expected a claim in long sentence")
	}
	for _, c := range report.Claims {
		if n := len([]rune(c.Context)); n > 100 {
			t.Errorf("Context exceeds 100 chars: %d", n)
		}
	}
}

func TestClaimExtractor_EmptyInput(t *testing.T) {
	e := NewClaimExtractor()

	report := e.Extract("")

	if report.UniqueCount != 0 || len(report.Claims) != 0 {
		t.Error("Expected no claims for empty input")
	}
	if report.RecommendVerification {
		t.Error("Expected no verification recommendation for empty input")
	}
	if report.Summary == "" {
		t.Error("Expected a summary even for empty input")
	}
}

func TestClaimExtractor_SummaryTally(t *testing.T) {
	e := NewClaimExtractor()

	report := e.Extract("Andelen är 30 procent idag. Forskning visar att den växer.")

	if !strings.Contains(report.Summary, "statistical") {
		t.Errorf("Expected summary to mention statistical, got %q", report.Summary)
	}
	if !strings.Contains(report.Summary, "scientific") {
		t.Errorf("Expected summary to mention scientific, got %q", report.Summary)
	}
}
