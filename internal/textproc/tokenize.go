package textproc

import (
	"strings"
	"unicode"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// SplitSentences splits text on sentence terminators followed by whitespace
// or end of input. No length filtering: the subjectivity pass applies its own
// minimum.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			atEnd := i+1 >= len(runes)
			if atEnd || runes[i+1] == ' ' || runes[i+1] == '\t' {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// SplitWords splits text into word tokens on any non-letter, non-digit rune.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Coarse tag names produced by TagWord.
const (
	TagNoun        = "noun"
	TagVerb        = "verb"
	TagAdjective   = "adjective"
	TagAdverb      = "adverb"
	TagPronoun     = "pronoun"
	TagDeterminer  = "determiner"
	TagPreposition = "preposition"
	TagConjunction = "conjunction"
	TagNumber      = "number"
)

type tagRule struct {
	tag   string
	match func(word string) bool
}

// tagPriority is the ordered rule list; the first matching tag wins.
// Closed-class words are matched exactly, open classes by suffix, noun last
// as the open-class default.
var tagPriority = []tagRule{
	{TagNumber, isNumeric},
	{TagPronoun, inSet(pronounWords)},
	{TagDeterminer, inSet(determinerWords)},
	{TagPreposition, inSet(prepositionWords)},
	{TagConjunction, inSet(conjunctionWords)},
	{TagNoun, hasSuffix(nounSuffixes)},
	{TagVerb, hasSuffix(verbSuffixes)},
	{TagAdjective, hasSuffix(adjectiveSuffixes)},
	{TagAdverb, hasSuffix(adverbSuffixes)},
}

var pronounWords = []string{
	"jag", "du", "han", "hon", "hen", "den", "det", "vi", "ni", "de", "dem", "man", "sig",
	"i", "you", "he", "she", "it", "we", "they", "them", "me", "him", "her", "us",
}

var determinerWords = []string{
	"en", "ett", "denna", "detta", "dessa", "varje", "någon", "något", "några", "alla",
	"the", "a", "an", "this", "that", "these", "those", "every", "some", "all",
}

var prepositionWords = []string{
	"av", "på", "för", "med", "till", "från", "om", "under", "över", "mellan", "utan", "vid", "enligt",
	"of", "on", "for", "with", "to", "from", "about", "between", "without", "at", "by", "in",
}

var conjunctionWords = []string{
	"och", "eller", "men", "att", "eftersom", "medan", "samt",
	"and", "or", "but", "because", "while", "although", "however",
}

var nounSuffixes = []string{"tion", "sion", "ning", "else", "skap", "itet", "ness", "ment", "ship", "ism", "ology"}
var verbSuffixes = []string{"era", "erar", "erade", "ade", "izes", "ized", "ize", "ated", "ates"}
var adjectiveSuffixes = []string{"isk", "iga", "lig", "full", "sam", "ous", "ive", "able", "less", "ical"}
var adverbSuffixes = []string{"vis", "ledes", "ly"}

// TagWord assigns the coarse part-of-speech tag to a single word.
func TagWord(word string) string {
	w := strings.ToLower(word)
	for _, rule := range tagPriority {
		if rule.match(w) {
			return rule.tag
		}
	}
	return TagNoun
}

// Tokenize produces the full tokenization: sentences plus tagged word tokens.
func Tokenize(text string, prov model.Provenance) model.Tokenization {
	sentences := SplitSentences(text)
	words := SplitWords(text)

	tokens := make([]model.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, model.Token{Word: w, Tag: TagWord(w)})
	}

	return model.Tokenization{
		Sentences:     sentences,
		Tokens:        tokens,
		SentenceCount: len(sentences),
		WordCount:     len(words),
		Provenance:    prov,
	}
}

func inSet(words []string) func(string) bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return func(word string) bool { return set[word] }
}

func hasSuffix(suffixes []string) func(string) bool {
	return func(word string) bool {
		if len(word) < 4 {
			return false
		}
		for _, s := range suffixes {
			if strings.HasSuffix(word, s) && len(word) > len(s) {
				return true
			}
		}
		return false
	}
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}
