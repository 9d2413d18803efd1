package lessons

import (
	"fmt"
	"strings"

	"github.com/abhisek/feynman/internal/checkpoints"
)

const (
	// MaxKeyConcepts caps the key-concept section.
	MaxKeyConcepts = 4

	summaryChars = 60
	snippetChars = 40
	insightWords = 10
	closingWords = 5

	fallbackTerm    = "Concept"
	conceptContext  = "Extracted from notes"
	ellipsis        = "..."
	placeholderCore = "[fundamental principle extracted from notes]"
	placeholderKey  = "[important insight from the notes]"
	placeholderLink = "[related concept from notes]"
	placeholderNote = "[details from notes]"
)

// Generate builds the explanation for a checkpoint from the learner's notes.
// It is a pure function of its inputs; empty notes swap every notes-derived
// fragment for a bracketed placeholder.
func Generate(cp checkpoints.Checkpoint, notes string) ExplanationContent {
	return ExplanationContent{
		SimplifiedExplanation: simplified(cp, notes),
		KeyConcepts:           keyConcepts(cp, notes),
		AnalogiesAndExamples:  illustrations(cp, notes),
	}
}

// KeyTerm strips the "Understanding " prefix from a checkpoint title.
// Titles without the prefix are returned unchanged.
func KeyTerm(title string) string {
	return strings.TrimPrefix(title, checkpoints.TitlePrefix)
}

func simplified(cp checkpoints.Checkpoint, notes string) []string {
	term := KeyTerm(cp.Title)

	core, insight, link := placeholderCore, placeholderKey, placeholderLink
	if notes != "" {
		words := strings.Split(notes, " ")
		core = truncate(notes, summaryChars)
		insight = strings.Join(words[:min(insightWords, len(words))], " ") + ellipsis
		link = strings.Join(words[max(0, len(words)-closingWords):], " ")
	}

	return []string{
		fmt.Sprintf("Let's break down %s in the simplest way possible.", term),
		fmt.Sprintf("At its core, %s is about %s.", term, core),
		"Think of it as a system where [component 1] interacts with [component 2] to produce [result].",
		fmt.Sprintf("The key insight is that %s.", insight),
		fmt.Sprintf("When you understand this, you'll see how it connects to %s.", link),
	}
}

// noteConcept is the single concept the key-concept section draws on.
type noteConcept struct {
	term    string
	context string
}

func conceptsFromNotes(notes string) []noteConcept {
	if notes == "" {
		return nil
	}
	term, _, _ := strings.Cut(notes, " ")
	if term == "" {
		term = fallbackTerm
	}
	return []noteConcept{{term: term, context: conceptContext}}
}

func keyConcepts(cp checkpoints.Checkpoint, notes string) []KeyConcept {
	found := conceptsFromNotes(notes)
	if len(found) > MaxKeyConcepts {
		found = found[:MaxKeyConcepts]
	}

	out := make([]KeyConcept, 0, len(found))
	for _, c := range found {
		out = append(out, KeyConcept{
			Term: c.term,
			Definition: fmt.Sprintf("In the context of %s, %s refers to The term \"%s\" means [definition based on context: %s]",
				cp.Title, c.term, c.term, c.context),
		})
	}
	return out
}

func illustrations(cp checkpoints.Checkpoint, notes string) []Illustration {
	term := KeyTerm(cp.Title)

	snippet := placeholderNote
	if notes != "" {
		snippet = truncate(notes, snippetChars)
	}

	return []Illustration{
		{
			Type:        TypeAnalogy,
			Content:     fmt.Sprintf("%s is like a [everyday object] in that [comparison of how they work]. For example, consider: %s", term, snippet),
			Explanation: "This analogy helps because most people understand how [everyday object] functions.",
		},
		{
			Type:        TypeExample,
			Content:     fmt.Sprintf("A real-world example of %s is [concrete example from everyday life]. Here's a detail from your notes: %s", term, snippet),
			Explanation: "This shows how the abstract concept applies in a familiar context.",
		},
		{
			Type:        TypeAnalogy,
			Content:     fmt.Sprintf("If you think of [related concept] as a [metaphor], then %s would be the [complementary metaphor]. Your notes mention: %s", term, snippet),
			Explanation: "This relationship helps build on knowledge you already have.",
		},
	}
}

// truncate keeps the first n runes of s, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + ellipsis
}
