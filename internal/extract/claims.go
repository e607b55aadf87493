package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/lexicon"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/textproc"
)

type claimPattern struct {
	claimType   model.ClaimType
	description string
	re          *regexp.Regexp
}

// The five regex claim types. The sixth, definitive-phrase check, is a
// lexicon scan (see definitivePhrases).
var claimPatterns = []claimPattern{
	{
		model.ClaimStatistical,
		"Statistical claim with a percentage or proportion",
		regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s*(?:%|procent|percent)`),
	},
	{
		model.ClaimScientific,
		"Reference to research or studies",
		regexp.MustCompile(`(?i)(?:forskning(?:en)?|studier?n?|undersökning(?:en)?|research|stud(?:y|ies)|survey)\s+(?:visar|tyder|bekräftar|fann|shows?|indicates?|confirms?|suggests?|found)|enligt (?:forskare|forskningen|experter)|according to (?:researchers|scientists|experts)`),
	},
	{
		model.ClaimNumerical,
		"Quantified amount or count",
		regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s*(?:miljoner|miljarder|tusen|kronor|million|billion|thousand|dollars?|euro)\b`),
	},
	{
		model.ClaimHistorical,
		"Historical assertion about origin or discovery",
		regexp.MustCompile(`(?i)(?:grundades|uppfanns|upptäcktes|infördes|för \d+ år sedan|was founded|was invented|was discovered|was introduced|\d+ years ago)`),
	},
	{
		model.ClaimTemporal,
		"Dated assertion tied to a specific time",
		regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b|\b\d{4}-talet\b|\b(?:århundradet|century|decade)\b`),
	},
}

var definitivePhrases = []string{
	"alltid", "aldrig", "bevisligen", "otvivelaktigt", "definitivt",
	"garanterat", "utan undantag", "always", "never", "proven",
	"undoubtedly", "definitely", "guaranteed", "without exception",
}

const (
	maxClaims          = 5
	claimContextRadius = 50
	verificationFloor  = 2 // More unique claims than this → recommend verification
)

// ClaimExtractor locates candidate verifiable claims. It performs no
// verification and calls no network service.
type ClaimExtractor struct {
	definitive *lexicon.Matcher
}

// NewClaimExtractor creates an extractor with the compiled-in patterns.
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{
		definitive: lexicon.MustMatcher(definitivePhrases),
	}
}

// Extract scans each sentence against the six claim checks, deduplicates by
// normalized context, and keeps the five highest-priority claims.
func (e *ClaimExtractor) Extract(text string) model.ClaimReport {
	prov := model.NewProvenance("civicai-claims", "1.0.0", "pattern-claim-extraction")

	if strings.TrimSpace(text) == "" {
		return model.NeutralClaims(prov)
	}

	var all []model.Claim
	for _, sentence := range textproc.SplitSentences(text) {
		all = append(all, e.scanSentence(sentence)...)
	}

	unique := dedupeClaims(all)

	sort.SliceStable(unique, func(i, j int) bool {
		return model.ClaimPriority(unique[i].Type) > model.ClaimPriority(unique[j].Type)
	})

	kept := unique
	if len(kept) > maxClaims {
		kept = kept[:maxClaims]
	}

	return model.ClaimReport{
		Claims:                kept,
		TotalFound:            len(all),
		UniqueCount:           len(unique),
		RecommendVerification: len(unique) > verificationFloor,
		Summary:               summarizeClaims(unique),
		Provenance:            prov,
	}
}

// scanSentence applies every claim check to one sentence. Context windows
// are clipped to the sentence so verbatim-repeated sentences deduplicate.
func (e *ClaimExtractor) scanSentence(sentence string) []model.Claim {
	var claims []model.Claim

	for _, p := range claimPatterns {
		for _, loc := range p.re.FindAllStringIndex(sentence, -1) {
			claims = append(claims, model.Claim{
				Type:        p.claimType,
				Description: p.description,
				Claim:       sentence[loc[0]:loc[1]],
				Context:     claimContext(sentence, loc[0], loc[1]),
			})
		}
	}

	for _, m := range e.definitive.Find(sentence) {
		claims = append(claims, model.Claim{
			Type:        model.ClaimDefinitive,
			Description: "Absolute assertion presented as fact",
			Claim:       m.Phrase,
			Context:     claimContextRunes(sentence, m.Pos, m.Pos+len([]rune(m.Phrase))),
		})
	}

	return claims
}

// claimContext extracts the ±50-char window around a byte-indexed match,
// capped at 100 characters.
func claimContext(sentence string, byteStart, byteEnd int) string {
	start := len([]rune(sentence[:byteStart]))
	end := len([]rune(sentence[:byteEnd]))
	return claimContextRunes(sentence, start, end)
}

func claimContextRunes(sentence string, start, end int) string {
	runes := []rune(sentence)
	lo := start - claimContextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + claimContextRadius
	if hi > len(runes) {
		hi = len(runes)
	}
	ctx := strings.TrimSpace(string(runes[lo:hi]))
	ctxRunes := []rune(ctx)
	if len(ctxRunes) > 100 {
		ctx = string(ctxRunes[:100])
	}
	return ctx
}

// dedupeClaims removes claims with identical normalized context.
func dedupeClaims(claims []model.Claim) []model.Claim {
	seen := make(map[string]bool, len(claims))
	var unique []model.Claim
	for _, c := range claims {
		key := strings.Join(strings.Fields(strings.ToLower(c.Context)), " ")
		if !seen[key] {
			seen[key] = true
			unique = append(unique, c)
		}
	}
	return unique
}

// summarizeClaims builds the human-readable tally sentence.
func summarizeClaims(claims []model.Claim) string {
	if len(claims) == 0 {
		return "No verifiable claims found."
	}

	tally := make(map[model.ClaimType]int)
	for _, c := range claims {
		tally[c.Type]++
	}

	types := make([]model.ClaimType, 0, len(tally))
	for t := range tally {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return model.ClaimPriority(types[i]) > model.ClaimPriority(types[j])
	})

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%d %s", tally[t], t))
	}
	return fmt.Sprintf("Found %d verifiable claim(s): %s.", len(claims), strings.Join(parts, ", "))
}
