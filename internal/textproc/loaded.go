package textproc

import (
	"regexp"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

type loadedCategory struct {
	name string
	re   *regexp.Regexp
}

// The six loaded-language categories, scanned independently.
var loadedCategories = []loadedCategory{
	{"strong_positive", regexp.MustCompile(`(?i)\b(fantastisk\w*|otrolig\w*|enastående|revolutionerande|perfekt\w*|amazing|incredible|phenomenal|outstanding|perfect)\b`)},
	{"strong_negative", regexp.MustCompile(`(?i)\b(katastrof\w*|förfärlig\w*|fruktansvärd\w*|värdelös\w*|terrible|awful|disastrous|horrible|worthless)\b`)},
	{"alarmist", regexp.MustCompile(`(?i)\b(kris\w*|hotar?\w*|fara|akut\w*|varning\w*|crisis|threat\w*|danger\w*|alarming|urgent|emergency)\b`)},
	{"hyperbole", regexp.MustCompile(`(?i)\b(alltid|aldrig|alla vet|ingen kan|miljontals|bokstavligen|always|never|everyone knows|nobody can|millions of|literally)\b`)},
	{"judgmental", regexp.MustCompile(`(?i)\b(idiotisk\w*|naiv\w*|ansvarslös\w*|skamlig\w*|foolish|stupid|naive|irresponsible|shameful|disgraceful)\b`)},
	{"emotional_appeal", regexp.MustCompile(`(?i)(tänk på barnen|hjärtskärande|djupt rörande|tragisk\w*|think of the children|heartbreaking|deeply moving|tragic)`)},
}

// contextRadius is the half-width of the deduplication window around a match.
const contextRadius = 40

// ScanLoadedExpressions finds emotionally loaded phrases across the six
// fixed categories. Within a category, matches are deduplicated by their
// normalized 80-character context window so the same passage reports once.
func ScanLoadedExpressions(text string, prov model.Provenance) model.LoadedExpressions {
	var found []model.LoadedExpression
	seen := make(map[string]bool)

	runes := []rune(text)
	for _, cat := range loadedCategories {
		for _, loc := range cat.re.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			ctx := contextWindow(runes, loc[0], loc[1], text)
			// Categories scan independently: dedupe within a category
			// only, so overlapping windows cannot suppress another
			// category's match.
			key := cat.name + "\x00" + normalizeContext(ctx)
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, model.LoadedExpression{
				Category: cat.name,
				Match:    match,
				Context:  ctx,
			})
		}
	}

	return model.LoadedExpressions{
		Expressions: found,
		Count:       len(found),
		Provenance:  prov,
	}
}

// contextWindow extracts the 80-char window around a byte-indexed match.
func contextWindow(runes []rune, byteStart, byteEnd int, text string) string {
	start := len([]rune(text[:byteStart]))
	end := len([]rune(text[:byteEnd]))

	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + contextRadius
	if hi > len(runes) {
		hi = len(runes)
	}
	return strings.TrimSpace(string(runes[lo:hi]))
}

func normalizeContext(ctx string) string {
	return strings.Join(strings.Fields(strings.ToLower(ctx)), " ")
}
