package concepts

// stopWords are common English function words never treated as concepts.
// Most are shorter than MinTermLength; the list is kept whole so callers
// that relax the length filter still get the same exclusions.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "had": {}, "her": {}, "was": {}, "one": {}, "our": {},
	"out": {}, "day": {}, "get": {}, "has": {}, "him": {}, "his": {}, "how": {},
	"its": {}, "may": {}, "new": {}, "now": {}, "old": {}, "see": {}, "two": {},
	"who": {}, "boy": {}, "did": {}, "does": {}, "let": {}, "put": {}, "say": {},
	"she": {}, "too": {}, "use": {}, "that": {}, "with": {}, "have": {}, "this": {},
	"will": {}, "your": {}, "from": {}, "they": {}, "know": {}, "want": {}, "been": {},
	"good": {}, "much": {}, "some": {}, "time": {}, "very": {}, "when": {}, "come": {},
	"here": {}, "just": {}, "like": {}, "long": {}, "make": {}, "many": {}, "over": {},
	"such": {}, "take": {}, "than": {}, "them": {}, "well": {}, "were": {}, "what": {},
}

// IsStopWord reports whether the lower-cased word is in the stop-word table.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
