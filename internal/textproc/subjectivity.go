package textproc

import (
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/lexicon"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Phrases signalling first-person stance, evaluation, or hedging.
var subjectiveIndicators = []string{
	// Swedish
	"jag tycker", "jag tror", "jag anser", "jag känner", "enligt mig",
	"borde", "måste väl", "känns som", "uppenbarligen", "tyvärr",
	"lyckligtvis", "förhoppningsvis", "fantastisk", "hemsk", "bäst", "sämst",
	"otroligt", "verkligen", "helt klart",
	// English
	"i think", "i believe", "i feel", "in my opinion", "should",
	"obviously", "unfortunately", "fortunately", "hopefully", "amazing",
	"terrible", "clearly", "of course",
}

// Phrases signalling attribution, measurement, or reported data.
var objectiveIndicators = []string{
	// Swedish
	"enligt", "statistik", "procent", "rapporten", "studien", "undersökningen",
	"visar att", "uppmättes", "antalet", "datan", "forskarna", "siffror",
	// English
	"according to", "statistics", "percent", "the report", "the study",
	"the survey", "shows that", "was measured", "the number of", "the data",
	"researchers", "figures",
}

// SubjectivityScanner labels each sentence subjective or objective by
// counting indicator-lexicon hits.
type SubjectivityScanner struct {
	subjective *lexicon.Matcher
	objective  *lexicon.Matcher
}

// NewSubjectivityScanner creates a scanner over the fixed indicator lexicons.
func NewSubjectivityScanner() *SubjectivityScanner {
	return &SubjectivityScanner{
		subjective: lexicon.MustMatcher(subjectiveIndicators),
		objective:  lexicon.MustMatcher(objectiveIndicators),
	}
}

// Scan scores every sentence longer than 10 characters. A sentence is
// subjective when its subjective count exceeds its objective count; a
// sentence with no indicators at all also counts as subjective, biasing the
// score toward flagging uncertainty. Document score is the subjective share.
func (s *SubjectivityScanner) Scan(sentences []string, prov model.Provenance) model.SubjectivityAnalysis {
	var scored []model.SentenceSubjectivity
	subjectiveCount := 0

	for _, sentence := range sentences {
		// Rune count, not bytes: å/ä/ö must not inflate the length.
		if len([]rune(sentence)) <= 10 {
			continue
		}
		subj := s.subjective.Count(sentence)
		obj := s.objective.Count(sentence)

		label := "objective"
		if subj > obj || (subj == 0 && obj == 0) {
			label = "subjective"
			subjectiveCount++
		}
		scored = append(scored, model.SentenceSubjectivity{
			Sentence:       sentence,
			Label:          label,
			SubjectiveHits: subj,
			ObjectiveHits:  obj,
		})
	}

	total := len(scored)
	score := 0.0
	if total > 0 {
		score = float64(subjectiveCount) / float64(total)
	}

	return model.SubjectivityAnalysis{
		Score:               score,
		SubjectiveSentences: subjectiveCount,
		TotalSentences:      total,
		Sentences:           scored,
		Provenance:          prov,
	}
}
