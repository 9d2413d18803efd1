package concepts

import (
	"regexp"
	"strings"
)

const (
	// MinTermLength is the shortest token that can become a concept.
	MinTermLength = 5

	// MaxConcepts caps the number of concepts returned per extraction.
	MaxConcepts = 5
)

var (
	nonWord = regexp.MustCompile(`\W+`)
	digits  = regexp.MustCompile(`^\d+$`)
)

// Concept is a candidate key term pulled out of a learner's notes.
type Concept struct {
	Term    string `json:"term"`
	Context string `json:"context"`
}

// Extract returns up to MaxConcepts candidate terms from notes, in order of
// first appearance. Tokens are kept when they are longer than four
// characters, are not stop words, and are not purely numeric. Context is
// always the full notes string.
//
// Empty or whitespace-only notes yield an empty slice.
func Extract(notes string) []Concept {
	out := make([]Concept, 0, MaxConcepts)
	seen := make(map[string]bool)

	for _, tok := range nonWord.Split(strings.ToLower(notes), -1) {
		if !significant(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, Concept{
			Term:    capitalizeFirst(tok),
			Context: notes,
		})
		if len(out) == MaxConcepts {
			break
		}
	}
	return out
}

// significant reports whether a lower-cased token is a concept candidate.
func significant(tok string) bool {
	if len(tok) < MinTermLength {
		return false
	}
	if IsStopWord(tok) {
		return false
	}
	return !digits.MatchString(tok)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
