package classify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/lexicon"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

var politicalLeftTerms = []string{
	"vänstern", "socialism", "välfärdsstat", "omfördelning", "jämlikhet",
	"kollektiv", "solidaritet", "fackförening", "arbetarklass",
	"left-wing", "socialism", "welfare state", "redistribution", "equality",
	"collective", "solidarity", "trade union", "working class",
}

var politicalRightTerms = []string{
	"högern", "skattesänkning", "privatisering", "marknadsliberal",
	"entreprenörskap", "valfrihet", "näringsliv", "äganderätt",
	"right-wing", "tax cuts", "privatization", "free enterprise",
	"entrepreneurship", "school choice", "property rights", "deregulation",
}

var commercialTerms = []string{
	"köp nu", "erbjudande", "rabatt", "bästa priset", "sponsrad", "kampanjpris",
	"begränsat antal", "buy now", "special offer", "discount", "best price",
	"sponsored", "limited time", "exclusive deal",
}

var culturalWesternTerms = []string{
	"västvärlden", "västerländsk", "europeisk", "amerikansk", "civiliserad",
	"utvecklade länder", "the west", "western", "european", "american",
	"civilized", "developed world", "first world",
}

var culturalNonWesternTerms = []string{
	"österländsk", "afrikansk", "asiatisk", "ursprungsbefolkning",
	"globala syd", "utvecklingsländer", "eastern", "african", "asian",
	"indigenous", "global south", "developing world",
}

var confirmationTerms = []string{
	"som vi alla vet", "det är uppenbart att", "ingen kan förneka",
	"alla är överens om", "det säger sig självt", "as we all know",
	"it is obvious that", "no one can deny", "everyone agrees",
	"it goes without saying",
}

var recencyTerms = []string{
	"nyligen", "senaste", "just nu", "idag", "färsk", "trendande",
	"denna vecka", "recently", "latest", "right now", "today", "brand new",
	"trending", "this week", "breaking",
}

// BiasDetector runs the five independent bias checks over a text.
type BiasDetector struct {
	politicalLeft  *lexicon.Matcher
	politicalRight *lexicon.Matcher
	commercial     *lexicon.Matcher
	western        *lexicon.Matcher
	nonWestern     *lexicon.Matcher
	confirmation   *lexicon.Matcher
	recency        *lexicon.Matcher
}

// NewBiasDetector creates a detector over the compiled-in lexicons.
func NewBiasDetector() *BiasDetector {
	return &BiasDetector{
		politicalLeft:  lexicon.MustMatcher(politicalLeftTerms),
		politicalRight: lexicon.MustMatcher(politicalRightTerms),
		commercial:     lexicon.MustMatcher(commercialTerms),
		western:        lexicon.MustMatcher(culturalWesternTerms),
		nonWestern:     lexicon.MustMatcher(culturalNonWesternTerms),
		confirmation:   lexicon.MustMatcher(confirmationTerms),
		recency:        lexicon.MustMatcher(recencyTerms),
	}
}

// Detect runs all five checks. The overall score is the sum of severity
// weights capped at 10; "detected" requires a score above 2. Findings are
// sorted by severity weight, descending.
func (d *BiasDetector) Detect(text string) model.BiasReport {
	prov := model.NewProvenance("civicai-bias", "1.0.0", "five-dimension-lexicon-scan")

	if strings.TrimSpace(text) == "" {
		return model.NeutralBias(prov)
	}

	var findings []model.BiasFinding
	if f, ok := d.checkPolitical(text); ok {
		findings = append(findings, f)
	}
	if f, ok := d.checkCommercial(text); ok {
		findings = append(findings, f)
	}
	if f, ok := d.checkCultural(text); ok {
		findings = append(findings, f)
	}
	if f, ok := d.checkConfirmation(text); ok {
		findings = append(findings, f)
	}
	if f, ok := d.checkRecency(text); ok {
		findings = append(findings, f)
	}

	score := 0
	for _, f := range findings {
		score += model.SeverityWeight(f.Severity)
	}
	if score > 10 {
		score = 10
	}

	overall := "minimal"
	if score > 2 {
		overall = "detected"
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return model.SeverityWeight(findings[i].Severity) > model.SeverityWeight(findings[j].Severity)
	})

	return model.BiasReport{
		OverallBias:    overall,
		BiasScore:      float64(score),
		DetectedBiases: findings,
		Provenance:     prov,
	}
}

// checkPolitical compares left and right lexicon counts. A direction is
// assigned only when one side exceeds the other by more than 2.
func (d *BiasDetector) checkPolitical(text string) (model.BiasFinding, bool) {
	left := d.politicalLeft.Count(text)
	right := d.politicalRight.Count(text)

	diff := left - right
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return model.BiasFinding{}, false
	}

	direction := ""
	if left > right+2 {
		direction = "left"
	} else if right > left+2 {
		direction = "right"
	}

	return model.BiasFinding{
		Type:        model.BiasPolitical,
		Severity:    severityFor(diff),
		Direction:   direction,
		Description: fmt.Sprintf("Political loading: %d left-coded vs %d right-coded terms", left, right),
		Score:       diff,
	}, true
}

// checkCommercial fires when more than one commercial term appears.
func (d *BiasDetector) checkCommercial(text string) (model.BiasFinding, bool) {
	count := d.commercial.Count(text)
	if count <= 1 {
		return model.BiasFinding{}, false
	}
	return model.BiasFinding{
		Type:        model.BiasCommercial,
		Severity:    severityFor(count),
		Description: fmt.Sprintf("Commercial framing: %d promotional terms", count),
		Score:       count,
	}, true
}

// checkCultural compares western and non-western framing counts. Both
// directions are tested with the same margin.
func (d *BiasDetector) checkCultural(text string) (model.BiasFinding, bool) {
	western := d.western.Count(text)
	nonWestern := d.nonWestern.Count(text)

	var direction string
	var score int
	switch {
	case western > nonWestern+1:
		direction = "western"
		score = western - nonWestern
	case nonWestern > western+1:
		direction = "non_western"
		score = nonWestern - western
	default:
		return model.BiasFinding{}, false
	}

	return model.BiasFinding{
		Type:        model.BiasCultural,
		Severity:    severityFor(score),
		Direction:   direction,
		Description: fmt.Sprintf("Cultural framing dominated by %s perspective (%d vs %d terms)", direction, western, nonWestern),
		Score:       score,
	}, true
}

// checkConfirmation fires on any consensus-assuming phrase.
func (d *BiasDetector) checkConfirmation(text string) (model.BiasFinding, bool) {
	count := d.confirmation.Count(text)
	if count == 0 {
		return model.BiasFinding{}, false
	}
	return model.BiasFinding{
		Type:        model.BiasConfirmation,
		Severity:    severityFor(count),
		Description: fmt.Sprintf("Confirmation framing: %d consensus-assuming phrases", count),
		Score:       count,
	}, true
}

// checkRecency fires above 2 matches; the reported score is reduced by 2 to
// discount ordinary temporal language.
func (d *BiasDetector) checkRecency(text string) (model.BiasFinding, bool) {
	count := d.recency.Count(text)
	if count <= 2 {
		return model.BiasFinding{}, false
	}
	score := count - 2
	return model.BiasFinding{
		Type:        model.BiasRecency,
		Severity:    severityFor(score),
		Description: fmt.Sprintf("Recency emphasis: %d novelty terms", count),
		Score:       score,
	}, true
}

// severityFor maps a raw check score to a severity grade.
func severityFor(score int) model.Severity {
	switch {
	case score <= 1:
		return model.SeverityLow
	case score <= 3:
		return model.SeverityMedium
	default:
		return model.SeverityHigh
	}
}
