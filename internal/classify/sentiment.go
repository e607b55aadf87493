package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/lexicon"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/textproc"
)

var positiveWords = []string{
	"bra", "bättre", "bäst", "fantastisk", "glad", "positiv", "framgång",
	"vacker", "älskar", "perfekt", "underbar", "jättebra", "trygg", "hopp",
	"good", "great", "excellent", "happy", "positive", "success", "beautiful",
	"love", "perfect", "wonderful", "safe", "hopeful",
}

var negativeWords = []string{
	"dålig", "sämre", "sämst", "hemsk", "ledsen", "negativ", "misslyck",
	"ful", "hatar", "förfärlig", "katastrof", "otrygg", "farlig",
	"bad", "worse", "worst", "terrible", "sad", "negative", "failure",
	"ugly", "hate", "awful", "horrible", "dangerous",
}

type weightedPattern struct {
	name   string
	weight int
	re     *regexp.Regexp
}

// Sarcasm signal categories, weights 1-3.
var sarcasmPatterns = []weightedPattern{
	{"exaggeration", 2, regexp.MustCompile(`(?i)\b(jättebra|jättefint|helt otroligt|verkligen|absolut bäst|totally|absolutely amazing|oh great|just great|wonderful)\b`)},
	{"irony", 2, regexp.MustCompile(`(?i)(vilken överraskning|vem kunde ana|precis vad vi behövde|what a surprise|who could have guessed|just what we needed)`)},
	{"ironic_quotes", 1, regexp.MustCompile(`"[^"]{1,25}"`)},
	{"contradiction", 3, regexp.MustCompile(`(?i)(men visst|ja just det|självklart kommer|som om det|yeah right|sure it will|of course it will|as if)`)},
	{"rhetorical_question", 1, regexp.MustCompile(`(?i)(verkligen|seriöst|really|seriously)\?`)},
	{"over_politeness", 1, regexp.MustCompile(`(?i)(tack så hemskt mycket|så otroligt snällt|thank you ever so much|how very kind)`)},
}

// Aggression signal categories; insults and threats weigh heaviest.
var aggressionCategories = []struct {
	name    string
	weight  int
	phrases []string
}{
	{"insult", 3, []string{"idiot", "korkad", "pucko", "värdelös", "moron", "pathetic", "loser", "worthless"}},
	{"threat", 3, []string{"du kommer ångra", "akta dig", "jag ska förstöra", "you will regret", "watch yourself", "or else", "i will destroy"}},
	{"anger", 2, []string{"rasande", "förbannad", "ursinnig", "hatar", "furious", "enraged", "outraged", "hate"}},
	{"confrontational", 2, []string{"håll käften", "sluta ljug", "du har fel", "skäms", "shut up", "stop lying", "you are wrong", "nonsense"}},
	{"demanding", 1, []string{"omedelbart", "nu direkt", "gör det nu", "kräver att", "immediately", "right now", "do it now", "i demand"}},
}

// Empathy signal categories; compassion weighs heaviest.
var empathyCategories = []struct {
	name    string
	weight  int
	phrases []string
}{
	{"compassion", 3, []string{"jag beklagar", "så tråkigt att höra", "mitt hjärta", "beklagar sorgen", "so sorry to hear", "my heart goes out", "condolences"}},
	{"understanding", 2, []string{"jag förstår", "det låter svårt", "fullt förståeligt", "i understand", "that sounds hard", "that makes sense"}},
	{"support", 2, []string{"jag finns här", "vi hjälper dig", "stöttar dig", "i am here for you", "we support you", "you are not alone"}},
	{"validation", 2, []string{"det är okej att", "dina känslor", "helt rimligt", "it is okay to", "your feelings are valid", "completely reasonable"}},
	{"active_listening", 2, []string{"berätta mer", "hur känns det", "tell me more", "how does that feel", "what do you need"}},
	{"kindness", 1, []string{"snäll", "vänlig", "omtänksam", "kind", "gentle", "caring", "warm"}},
}

// Decision thresholds.
const (
	sarcasmThreshold     = 3
	aggressionThreshold  = 2
	empathyThreshold     = 3
	comparativeThreshold = 0.05
)

type weightedMatcher struct {
	name    string
	weight  int
	matcher *lexicon.Matcher
}

// SentimentAnalyzer scores polarity and runs the sarcasm, aggression, and
// empathy sub-detectors.
type SentimentAnalyzer struct {
	positive   *lexicon.Matcher
	negative   *lexicon.Matcher
	aggression []weightedMatcher
	empathy    []weightedMatcher
}

// NewSentimentAnalyzer creates an analyzer over the compiled-in lexicons.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	a := &SentimentAnalyzer{
		positive: lexicon.MustMatcher(positiveWords),
		negative: lexicon.MustMatcher(negativeWords),
	}
	for _, cat := range aggressionCategories {
		a.aggression = append(a.aggression, weightedMatcher{cat.name, cat.weight, lexicon.MustMatcher(cat.phrases)})
	}
	for _, cat := range empathyCategories {
		a.empathy = append(a.empathy, weightedMatcher{cat.name, cat.weight, lexicon.MustMatcher(cat.phrases)})
	}
	return a
}

// Analyze runs the polarity scorer and all three sub-detectors, then picks
// the overall tone by precedence: sarcastic > aggressive > empathetic >
// polarity classification.
func (a *SentimentAnalyzer) Analyze(text string) model.SentimentReport {
	prov := model.NewProvenance("civicai-sentiment", "1.0.0", "lexicon-polarity-with-subdetectors")

	if strings.TrimSpace(text) == "" {
		return model.NeutralSentiment(prov)
	}

	lex := a.scorePolarity(text)
	sarcasm := a.detectSarcasm(text, lex)
	aggression := a.detectAggression(text)
	empathy := a.detectEmpathy(text)

	overall := lex.Classification
	switch {
	case sarcasm.IsSarcastic:
		overall = "sarcastic"
	case aggression.IsAggressive:
		overall = "aggressive"
	case empathy.IsEmpathetic:
		overall = "empathetic"
	}

	return model.SentimentReport{
		VaderSentiment: lex,
		Sarcasm:        sarcasm,
		Aggression:     aggression,
		Empathy:        empathy,
		OverallTone:    overall,
		Provenance:     prov,
	}
}

func (a *SentimentAnalyzer) scorePolarity(text string) model.LexiconSentiment {
	positive := a.positive.Phrases(text)
	negative := a.negative.Phrases(text)
	posCount := a.positive.Count(text)
	negCount := a.negative.Count(text)

	score := posCount - negCount
	words := len(textproc.SplitWords(text))

	comparative := 0.0
	if words > 0 {
		comparative = float64(score) / float64(words)
	}

	classification := "neutral"
	if comparative >= comparativeThreshold {
		classification = "positive"
	} else if comparative <= -comparativeThreshold {
		classification = "negative"
	}

	abs := comparative
	if abs < 0 {
		abs = -abs
	}
	intensity := "mild"
	if abs > 0.5 {
		intensity = "strong"
	} else if abs > 0.2 {
		intensity = "moderate"
	}

	return model.LexiconSentiment{
		Score:          score,
		Comparative:    comparative,
		Classification: classification,
		Intensity:      intensity,
		PositiveWords:  positive,
		NegativeWords:  negative,
	}
}

// detectSarcasm sums weighted pattern matches and adds a mismatch bonus when
// strongly negative text still carries positive words.
func (a *SentimentAnalyzer) detectSarcasm(text string, lex model.LexiconSentiment) model.SarcasmResult {
	score := 0
	var indicators []string
	for _, p := range sarcasmPatterns {
		n := len(p.re.FindAllString(text, -1))
		if n == 0 {
			continue
		}
		score += n * p.weight
		indicators = append(indicators, p.name)
	}

	if lex.Score < -2 && len(lex.PositiveWords) > 0 {
		score += 2
		indicators = append(indicators, "sentiment_mismatch")
	}

	confidence := float64(score) / 10
	if confidence > 1 {
		confidence = 1
	}

	return model.SarcasmResult{
		IsSarcastic: score >= sarcasmThreshold,
		Score:       score,
		Confidence:  confidence,
		Indicators:  indicators,
	}
}

func (a *SentimentAnalyzer) detectAggression(text string) model.AggressionResult {
	score := 0
	var indicators []string
	for _, wm := range a.aggression {
		n := wm.matcher.Count(text)
		if n == 0 {
			continue
		}
		score += n * wm.weight
		indicators = append(indicators, wm.name)
	}

	if countAllCapsWords(text) > 2 {
		score += 2
		indicators = append(indicators, "shouting")
	}
	if strings.Count(text, "!") > 2 {
		score++
		indicators = append(indicators, "excessive_exclamation")
	}

	level := "none"
	switch {
	case score >= 6:
		level = "high"
	case score >= 3:
		level = "medium"
	case score >= 1:
		level = "low"
	}

	return model.AggressionResult{
		IsAggressive: score >= aggressionThreshold,
		Score:        score,
		Level:        level,
		Indicators:   indicators,
	}
}

func (a *SentimentAnalyzer) detectEmpathy(text string) model.EmpathyResult {
	score := 0
	var indicators []string
	for _, wm := range a.empathy {
		n := wm.matcher.Count(text)
		if n == 0 {
			continue
		}
		score += n * wm.weight
		indicators = append(indicators, wm.name)
	}

	if q := strings.Count(text, "?"); q > 0 {
		bonus := q
		if bonus > 3 {
			bonus = 3
		}
		score += bonus
		indicators = append(indicators, "inviting_questions")
	}

	level := "none"
	switch {
	case score >= 8:
		level = "high"
	case score >= 4:
		level = "medium"
	case score >= 2:
		level = "low"
	}

	return model.EmpathyResult{
		IsEmpathetic: score >= empathyThreshold,
		Score:        score,
		Level:        level,
		Indicators:   indicators,
	}
}

// countAllCapsWords counts words of at least two letters written entirely in
// upper case.
func countAllCapsWords(text string) int {
	count := 0
	for _, w := range strings.Fields(text) {
		letters := 0
		allUpper := true
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
				if !unicode.IsUpper(r) {
					allUpper = false
					break
				}
			}
		}
		if allUpper && letters >= 2 {
			count++
		}
	}
	return count
}
