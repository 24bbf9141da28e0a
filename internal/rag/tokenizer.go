package rag

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords holds the common English function words dropped before scoring.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {}, "for": {}, "from": {},
	"has": {}, "he": {}, "in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "she": {},
	"that": {}, "the": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {}, "you": {}, "your": {},
	"this": {}, "they": {}, "but": {}, "have": {}, "had": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "who": {}, "how": {}, "not": {}, "no": {}, "can": {}, "do": {}, "does": {}, "if": {},
	"than": {}, "then": {}, "so": {}, "we": {}, "our": {},
}

// Tokenize lowercases text, splits it on whitespace and keeps words that are
// not stopwords, longer than two characters and purely alphabetic. Order and
// duplicates are preserved.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if _, stop := stopwords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) <= 2 || !isAlpha(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func isAlpha(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

// termCounts collapses a token sequence into term frequencies.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
