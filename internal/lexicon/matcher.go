package lexicon

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Match is one lexicon phrase located in a text.
type Match struct {
	Phrase string // The lexicon entry that matched (lowercase)
	Pos    int    // Rune offset of the match start
}

// Matcher locates occurrences of a fixed phrase list using a single
// Aho-Corasick automaton over the lowercased text. Matches must start at a
// word boundary; the end is left unanchored so that suffixed inflections
// still match ("välfärd" matches inside "välfärden").
type Matcher struct {
	machine *goahocorasick.Machine
	size    int
}

// NewMatcher builds a matcher from the given phrases. Phrases are lowercased
// and deduplicated; empty phrases are rejected.
func NewMatcher(phrases []string) (*Matcher, error) {
	seen := make(map[string]bool, len(phrases))
	var unique []string
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("lexicon: empty phrase in list")
		}
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	if len(unique) == 0 {
		return nil, fmt.Errorf("lexicon: no phrases")
	}
	sort.Strings(unique)

	patterns := make([][]rune, len(unique))
	for i, p := range unique {
		patterns[i] = []rune(p)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("lexicon: build automaton: %w", err)
	}
	return &Matcher{machine: m, size: len(unique)}, nil
}

// MustMatcher is like NewMatcher but panics on error. Intended for the
// compiled-in lexicon constants, analogous to regexp.MustCompile.
func MustMatcher(phrases []string) *Matcher {
	m, err := NewMatcher(phrases)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns the number of distinct phrases in the lexicon.
func (m *Matcher) Size() int {
	return m.size
}

// Find returns all word-boundary-anchored matches in text, in positional order.
func (m *Matcher) Find(text string) []Match {
	if text == "" {
		return nil
	}
	runes := []rune(strings.ToLower(text))
	terms := m.machine.MultiPatternSearch(runes, false)

	var matches []Match
	for _, t := range terms {
		if t.Pos > 0 && isWordRune(runes[t.Pos-1]) {
			continue // mid-word start, e.g. "rat" inside "byråkrat"
		}
		matches = append(matches, Match{Phrase: string(t.Word), Pos: t.Pos})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Pos != matches[j].Pos {
			return matches[i].Pos < matches[j].Pos
		}
		return matches[i].Phrase < matches[j].Phrase
	})
	return matches
}

// Count returns the number of word-boundary-anchored matches in text.
func (m *Matcher) Count(text string) int {
	return len(m.Find(text))
}

// Phrases returns the distinct phrases that matched, in first-seen order.
func (m *Matcher) Phrases(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, match := range m.Find(text) {
		if !seen[match.Phrase] {
			seen[match.Phrase] = true
			out = append(out, match.Phrase)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
