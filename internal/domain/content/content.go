// Package content gates analysis on whether the input is meaningful
// enough to score: placeholder text, degenerate repetition, and
// stop-word-only keyword sets are rejected before scoring.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// placeholderMarkers flag boilerplate filler text regardless of case.
var placeholderMarkers = []string{"lorem ipsum", "sample text", "placeholder"}

// stopWords is the fixed exclusion set for keyword significance checks.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "it": {}, "its": {}, "not": {}, "no": {}, "so": {},
	"if": {}, "then": {}, "than": {},
}

const (
	minTextLength      = 10
	repetitionRatioMin = 0.5
	repetitionMinWords = 10
	minKeywordLength   = 3
)

// IsMeaningful reports whether text and its extracted keywords carry
// enough signal to be worth scoring. Pure and deterministic.
func IsMeaningful(text string, keywords map[string]float64) bool {
	lower := strings.ToLower(text)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return false
	}

	if isDegenerateRepetition(lower) {
		return false
	}

	return countSignificantKeywords(keywords) > 0
}

// isDegenerateRepetition flags input dominated by repeated words, e.g.
// "spam spam spam ...". Short inputs are exempt.
func isDegenerateRepetition(lower string) bool {
	words := strings.Fields(lower)
	if len(words) <= repetitionMinWords {
		return false
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	ratio := float64(len(unique)) / float64(len(words))
	return ratio < repetitionRatioMin
}

// countSignificantKeywords counts keywords that survive the stop-word,
// minimum-length, and purely-numeric exclusions.
func countSignificantKeywords(keywords map[string]float64) int {
	count := 0
	for kw := range keywords {
		if isSignificantKeyword(kw) {
			count++
		}
	}
	return count
}

func isSignificantKeyword(kw string) bool {
	if utf8.RuneCountInString(kw) < minKeywordLength {
		return false
	}
	if _, ok := stopWords[strings.ToLower(kw)]; ok {
		return false
	}
	return !isNumeric(kw)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
