package textproc

import (
	"strings"
	"unicode"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Filler phrases counted as noise. Longest-first matching so "you know"
// beats "you".
var fillerPhrases = [][]string{
	{"sort", "of"}, {"kind", "of"}, {"you", "know"}, {"i", "mean"},
	{"typ", "alltså"},
	{"liksom"}, {"typ"}, {"alltså"}, {"faktiskt"}, {"ju"}, {"basically"},
	{"actually"}, {"literally"}, {"honestly"}, {"um"}, {"uh"}, {"eh"},
}

// ReduceNoise measures filler-word density and returns the text with filler
// sequences removed, word order preserved.
func ReduceNoise(text string, prov model.Provenance) model.NoiseAnalysis {
	words := strings.Fields(text)
	total := len(words)
	if total == 0 {
		return model.NoiseAnalysis{Provenance: prov}
	}

	var kept []string
	noise := 0

	for i := 0; i < len(words); {
		matched := 0
		for _, phrase := range fillerPhrases {
			if matchesPhraseAt(words, i, phrase) {
				matched = len(phrase)
				break
			}
		}
		if matched > 0 {
			noise += matched
			i += matched
			continue
		}
		kept = append(kept, words[i])
		i++
	}

	return model.NoiseAnalysis{
		Score:       float64(noise) / float64(total),
		NoiseWords:  noise,
		TotalWords:  total,
		CleanedText: strings.Join(kept, " "),
		Provenance:  prov,
	}
}

func matchesPhraseAt(words []string, i int, phrase []string) bool {
	if i+len(phrase) > len(words) {
		return false
	}
	for j, p := range phrase {
		if normalizeWord(words[i+j]) != p {
			return false
		}
	}
	return true
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}
