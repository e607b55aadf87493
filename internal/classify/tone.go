package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/lexicon"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/textproc"
)

// toneOrder fixes the category iteration order; argmax ties keep the
// first-seen category.
var toneOrder = []model.ToneLabel{
	model.ToneAnalytical,
	model.ToneEmpathetic,
	model.ToneAssertive,
	model.ToneOptimistic,
	model.ToneCritical,
	model.ToneCautious,
}

var toneLexicons = map[model.ToneLabel][]string{
	model.ToneAnalytical: {
		"därför", "eftersom", "analys", "jämförelse", "slutsats", "data",
		"studie", "resultat", "metod", "therefore", "because", "analysis",
		"comparison", "conclusion", "study", "evidence", "indicates", "method",
	},
	model.ToneEmpathetic: {
		"förstår", "känner", "tillsammans", "stöd", "omtanke", "hoppas",
		"lyssna", "understand", "feel", "together", "support", "care",
		"hope", "listen", "sorry",
	},
	model.ToneAssertive: {
		"måste", "krävs", "självklart", "definitivt", "utan tvekan",
		"must", "require", "definitely", "certainly", "clearly", "without doubt",
	},
	model.ToneOptimistic: {
		"möjlighet", "framtid", "förbättra", "utveckling", "positiv", "lösning",
		"opportunity", "future", "improve", "growth", "positive", "solution",
	},
	model.ToneCritical: {
		"problem", "brist", "misslyck", "kritik", "risk", "fel", "oro",
		"problem", "flaw", "failure", "criticism", "wrong", "concern", "lacking",
	},
	model.ToneCautious: {
		"kanske", "möjligen", "eventuellt", "osäker", "beror på", "troligen",
		"perhaps", "maybe", "possibly", "uncertain", "depends", "might",
	},
}

var listMarkerRe = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+[.)])\s`)

// Confidence bounds for non-empty input.
const (
	toneConfidenceFloor = 0.5
	toneConfidenceSpan  = 0.45
)

// ToneClassifier assigns one of six tone labels by keyword scoring plus
// structural signals (questions, list markers).
type ToneClassifier struct {
	matchers map[model.ToneLabel]*lexicon.Matcher
}

// NewToneClassifier creates a classifier over the compiled-in tone lexicons.
func NewToneClassifier() *ToneClassifier {
	matchers := make(map[model.ToneLabel]*lexicon.Matcher, len(toneLexicons))
	for label, phrases := range toneLexicons {
		matchers[label] = lexicon.MustMatcher(phrases)
	}
	return &ToneClassifier{matchers: matchers}
}

// Classify scores the text against every tone category. Question marks add
// to the empathetic score, more than two list markers add 2 to analytical.
// All-zero scores yield "neutral"; confidence is 0 only for empty input.
func (c *ToneClassifier) Classify(text string) model.ToneResult {
	prov := model.NewProvenance("civicai-tone", "1.0.0", "keyword-scoring")

	if strings.TrimSpace(text) == "" {
		return model.NeutralTone(prov)
	}

	scores := make(map[model.ToneLabel]int, len(toneOrder))
	for _, label := range toneOrder {
		scores[label] = c.matchers[label].Count(text)
	}

	if q := strings.Count(text, "?"); q > 0 {
		scores[model.ToneEmpathetic] += q
	}
	if len(listMarkerRe.FindAllString(text, -1)) > 2 {
		scores[model.ToneAnalytical] += 2
	}

	primary := model.ToneNeutral
	dominant := 0
	total := 0
	for _, label := range toneOrder {
		total += scores[label]
		if scores[label] > dominant {
			dominant = scores[label]
			primary = label
		}
	}

	if total == 0 {
		result := model.NeutralTone(prov)
		result.Confidence = toneConfidenceFloor
		return result
	}

	wordCount := len(textproc.SplitWords(text))
	lengthFactor := float64(wordCount) / 200
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	confidence := toneConfidenceFloor + (float64(dominant)/float64(total))*lengthFactor*toneConfidenceSpan
	if confidence > toneConfidenceFloor+toneConfidenceSpan {
		confidence = toneConfidenceFloor + toneConfidenceSpan
	}

	return model.ToneResult{
		Primary:         primary,
		Confidence:      confidence,
		Characteristics: topCharacteristics(scores),
		Provenance:      prov,
	}
}

// topCharacteristics returns up to 3 nonzero categories, strongest first.
// Equal scores keep the fixed category order.
func topCharacteristics(scores map[model.ToneLabel]int) []model.ToneLabel {
	var nonzero []model.ToneLabel
	for _, label := range toneOrder {
		if scores[label] > 0 {
			nonzero = append(nonzero, label)
		}
	}
	sort.SliceStable(nonzero, func(i, j int) bool {
		return scores[nonzero[i]] > scores[nonzero[j]]
	})
	if len(nonzero) > 3 {
		nonzero = nonzero[:3]
	}
	return nonzero
}
