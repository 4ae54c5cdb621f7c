// Package score implements the SEO score heuristic: a pure, deterministic
// mapping from keyword/topic weights and raw text to an integer in [0,100].
package score

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Category bands a score for display purposes.
type Category string

const (
	// CategoryHigh marks scores of 75 and above.
	CategoryHigh Category = "high"
	// CategoryMedium marks scores of 50 and above.
	CategoryMedium Category = "medium"
	// CategoryLow marks scores of 25 and above.
	CategoryLow Category = "low"
	// CategoryVeryLow marks everything below 25.
	CategoryVeryLow Category = "very-low"
)

// Heuristic constants. The exact values define the score-category
// boundaries clients depend on; do not retune without versioning the API.
const (
	minTextLength = 20
	minWordCount  = 5

	densityCap = 20.0

	densityWeight   = 2.0
	relevanceWeight = 0.8

	softClampKnee  = 85.0
	softClampSlope = 0.3
)

// Calculate derives the 0-100 SEO score from extracted keyword and topic
// weights and the analyzed text. Degenerate input (short text, no
// keywords, too few words) yields 0 rather than an error.
func Calculate(keywords, topics map[string]float64, text string) int {
	trimmed := strings.TrimSpace(text)
	textLength := utf8.RuneCountInString(trimmed)
	wordCount := len(strings.Fields(trimmed))
	keywordCount := len(keywords)

	if textLength < minTextLength || keywordCount == 0 || wordCount < minWordCount {
		return 0
	}

	// Keywords per 100 words, capped to suppress keyword-stuffing rewards.
	density := float64(keywordCount) / float64(wordCount) * 100
	if density > densityCap {
		density = densityCap
	}

	topicRelevance := maxWeight(topics) * 100

	base := density*densityWeight + topicRelevance*relevanceWeight

	s := base * lengthFactor(textLength) * keywordFactor(keywordCount) * diversityFactor(topics)

	// Diminishing returns above the knee.
	if s > softClampKnee {
		s = softClampKnee + (s-softClampKnee)*softClampSlope
	}

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return int(math.Round(s))
}

// CategoryFor bands a score into its display category.
func CategoryFor(s int) Category {
	switch {
	case s >= 75:
		return CategoryHigh
	case s >= 50:
		return CategoryMedium
	case s >= 25:
		return CategoryLow
	default:
		return CategoryVeryLow
	}
}

// lengthFactor is a monotonic confidence penalty for short content.
func lengthFactor(textLength int) float64 {
	switch {
	case textLength < 100:
		return 0.6
	case textLength < 200:
		return 0.8
	case textLength < 500:
		return 0.9
	default:
		return 1.0
	}
}

func keywordFactor(keywordCount int) float64 {
	switch {
	case keywordCount < 3:
		return 0.7
	case keywordCount < 5:
		return 0.85
	default:
		return 1.0
	}
}

// diversityFactor rewards multi-topic content: 1.1 when a second topic
// weighs in above 70% of the strongest one, 1.0 otherwise.
func diversityFactor(topics map[string]float64) float64 {
	if len(topics) < 2 {
		return 1.0
	}
	first, second := topTwoWeights(topics)
	if second > first*0.7 {
		return 1.1
	}
	return 1.0
}

func maxWeight(weights map[string]float64) float64 {
	var m float64
	for _, w := range weights {
		if w > m {
			m = w
		}
	}
	return m
}

func topTwoWeights(weights map[string]float64) (first, second float64) {
	for _, w := range weights {
		switch {
		case w > first:
			second = first
			first = w
		case w > second:
			second = w
		}
	}
	return first, second
}
