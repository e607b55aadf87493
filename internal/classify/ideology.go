package classify

import (
	"math"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/lexicon"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Axis lexicons. Left-coded terms push an axis negative, right-coded terms
// positive. Weight 1 per match.
var economicLeftTerms = []string{
	"välfärd", "omfördelning", "jämlikhet", "skattefinansierad",
	"offentlig sektor", "fackförening", "kollektivavtal", "socialism",
	"gemensamt ägande", "welfare", "redistribution", "equality",
	"public sector", "trade union", "collective bargaining", "wealth tax",
}

var economicRightTerms = []string{
	"lägre skatt", "skattesänkning", "fri marknad", "privatisering",
	"avreglering", "företagande", "konkurrens", "tillväxt", "äganderätt",
	"free market", "tax cut", "privatization", "deregulation",
	"enterprise", "competition", "economic growth", "property rights",
}

var socialProgressiveTerms = []string{
	"hbtq", "mångfald", "feminism", "klimaträttvisa", "inkludering",
	"antirasism", "normkritik", "lgbtq", "diversity", "feminism",
	"climate justice", "inclusion", "anti-racism", "progressive",
}

var socialConservativeTerms = []string{
	"traditionella värderingar", "kärnfamilj", "nationell identitet",
	"kristna värderingar", "kulturarv", "svenska värderingar",
	"traditional values", "nuclear family", "national identity",
	"christian values", "heritage", "family values",
}

var authorityLibertarianTerms = []string{
	"individuell frihet", "yttrandefrihet", "personlig integritet",
	"decentralisering", "medborgarrätt", "individual liberty",
	"free speech", "privacy", "decentralization", "civil rights",
	"small government",
}

var authorityAuthoritarianTerms = []string{
	"hårdare straff", "övervakning", "ordning och reda", "statlig kontroll",
	"censur", "lydnad", "tougher sentencing", "surveillance",
	"law and order", "state control", "censorship", "obedience",
}

// Classification bands and score weights.
const (
	ideologyBand    = 0.2 // |score| <= band → center
	extremeBand     = 0.6 // |overall| >= extreme → far_left / far_right
	economicWeight  = 0.5
	socialWeight    = 0.35
	authorityWeight = 0.15
	// Axis evidence saturates at this many markers; fewer markers damp the
	// axis score toward zero so one stray term cannot produce a hard lean.
	axisSaturation = 3
)

// partyBand maps a Swedish party to its approximate overall-score range.
// Bands overlap deliberately; the suggestion is informational only.
type partyBand struct {
	party string
	lo    float64
	hi    float64
}

var partyBands = []partyBand{
	{"Vänsterpartiet", -1.0, -0.4},
	{"Miljöpartiet", -0.6, -0.1},
	{"Socialdemokraterna", -0.6, 0.0},
	{"Centerpartiet", -0.2, 0.3},
	{"Liberalerna", -0.1, 0.4},
	{"Moderaterna", 0.2, 0.8},
	{"Kristdemokraterna", 0.3, 0.8},
	{"Sverigedemokraterna", 0.4, 1.0},
}

type axisLexicon struct {
	axis  model.IdeologyAxis
	left  *lexicon.Matcher
	right *lexicon.Matcher
}

// IdeologyClassifier scores three independent political axes and combines
// them into an overall left-center-right lean.
type IdeologyClassifier struct {
	axes []axisLexicon
}

// NewIdeologyClassifier creates a classifier over the compiled-in lexicons.
func NewIdeologyClassifier() *IdeologyClassifier {
	return &IdeologyClassifier{
		axes: []axisLexicon{
			{model.AxisEconomic, lexicon.MustMatcher(economicLeftTerms), lexicon.MustMatcher(economicRightTerms)},
			{model.AxisSocial, lexicon.MustMatcher(socialProgressiveTerms), lexicon.MustMatcher(socialConservativeTerms)},
			{model.AxisAuthority, lexicon.MustMatcher(authorityLibertarianTerms), lexicon.MustMatcher(authorityAuthoritarianTerms)},
		},
	}
}

// Classify scores each axis symmetrically: the raw score (right matches
// minus left matches) is normalized by the axis's own matched-marker mass
// and damped when evidence is thin, keeping every score in [-1,1].
func (c *IdeologyClassifier) Classify(text string) model.IdeologyReport {
	prov := model.NewProvenance("civicai-ideology", "1.0.0", "three-axis-lexicon-scoring")

	if strings.TrimSpace(text) == "" {
		return model.NeutralIdeology(prov)
	}

	var markers []model.IdeologyMarker
	scores := make(map[model.IdeologyAxis]model.AxisScore, len(c.axes))
	totalMarkers := 0

	for _, axis := range c.axes {
		leftHits := axis.left.Find(text)
		rightHits := axis.right.Find(text)

		for _, m := range leftHits {
			markers = append(markers, model.IdeologyMarker{Term: m.Phrase, Axis: axis.axis, Side: "left"})
		}
		for _, m := range rightHits {
			markers = append(markers, model.IdeologyMarker{Term: m.Phrase, Axis: axis.axis, Side: "right"})
		}

		left := len(leftHits)
		right := len(rightHits)
		totalMarkers += left + right

		scores[axis.axis] = model.AxisScore{
			Score:          axisScore(left, right),
			Classification: classify(axisScore(left, right)),
			LeftMarkers:    left,
			RightMarkers:   right,
		}
	}

	overall := economicWeight*scores[model.AxisEconomic].Score +
		socialWeight*scores[model.AxisSocial].Score +
		authorityWeight*scores[model.AxisAuthority].Score

	classification := classify(overall)

	markerFactor := float64(totalMarkers) / 10
	if markerFactor > 1 {
		markerFactor = 1
	}
	confidence := 0.6*markerFactor + 0.4*math.Abs(overall)

	return model.IdeologyReport{
		OverallScore:           overall,
		Classification:         classification,
		DetailedClassification: refineClassification(classification, overall, scores[model.AxisSocial].Score),
		Confidence:             confidence,
		Dimensions: model.IdeologyDimensions{
			Economic:  scores[model.AxisEconomic],
			Social:    scores[model.AxisSocial],
			Authority: scores[model.AxisAuthority],
		},
		Markers:        markers,
		PartyAlignment: suggestParties(overall, totalMarkers),
		Disclaimer:     model.IdeologyDisclaimer,
		Provenance:     prov,
	}
}

// axisScore normalizes (right - left) by the axis's matched-marker mass,
// damped by evidence volume so sparse matches stay near zero.
func axisScore(left, right int) float64 {
	total := left + right
	if total == 0 {
		return 0
	}
	direction := float64(right-left) / float64(total)
	damping := float64(total) / axisSaturation
	if damping > 1 {
		damping = 1
	}
	return direction * damping
}

func classify(score float64) string {
	switch {
	case score < -ideologyBand:
		return "left"
	case score > ideologyBand:
		return "right"
	default:
		return "center"
	}
}

// refineClassification splits left/right into the detailed labels using the
// overall magnitude and the social axis as the secondary signal.
func refineClassification(classification string, overall, social float64) string {
	switch classification {
	case "left":
		if overall <= -extremeBand {
			return "far_left"
		}
		if social < -ideologyBand {
			return "progressive_left"
		}
		return "left"
	case "right":
		if overall >= extremeBand {
			return "far_right"
		}
		if social > ideologyBand {
			return "conservative_right"
		}
		return "right"
	default:
		return "center"
	}
}

// suggestParties lists the parties whose score band contains the overall
// score, with affinity by closeness to the band midpoint. No markers, no
// suggestion.
func suggestParties(overall float64, totalMarkers int) []model.PartySuggestion {
	if totalMarkers == 0 {
		return nil
	}
	var out []model.PartySuggestion
	for _, b := range partyBands {
		if overall < b.lo || overall > b.hi {
			continue
		}
		mid := (b.lo + b.hi) / 2
		halfWidth := (b.hi - b.lo) / 2
		affinity := 1.0
		if halfWidth > 0 {
			affinity = 1 - math.Abs(overall-mid)/halfWidth
		}
		out = append(out, model.PartySuggestion{Party: b.party, Affinity: affinity})
	}
	return out
}
