package content

import (
	"strings"
	"testing"
)

func TestIsMeaningful_PlaceholderDetection(t *testing.T) {
	keywords := map[string]float64{"lorem": 1}

	tests := []string{
		"Lorem ipsum dolor sit amet",
		"LOREM IPSUM DOLOR SIT AMET CONSECTETUR",
		"here is some Sample Text for the page",
		"this is just a PLACEHOLDER until copy arrives",
	}
	for _, text := range tests {
		if IsMeaningful(text, keywords) {
			t.Errorf("expected rejection of placeholder text %q", text)
		}
	}
}

func TestIsMeaningful_ShortText(t *testing.T) {
	if IsMeaningful("short", map[string]float64{"keyword": 1}) {
		t.Error("expected rejection of text under 10 characters")
	}
	if IsMeaningful("   padded  ", map[string]float64{"keyword": 1}) {
		t.Error("trimmed length must decide, not raw length")
	}
}

func TestIsMeaningful_DegenerateRepetition(t *testing.T) {
	repeated := strings.TrimSpace(strings.Repeat("buy now ", 20))
	if IsMeaningful(repeated, map[string]float64{"purchase": 1}) {
		t.Error("expected rejection of repeated-word input")
	}

	// 10 words or fewer are exempt from the repetition check.
	short := "spam spam spam spam spam spam spam spam spam"
	if !IsMeaningful(short, map[string]float64{"spam": 1}) {
		t.Error("short repeated input must pass the repetition gate")
	}
}

func TestIsMeaningful_KeywordSignificance(t *testing.T) {
	text := "a perfectly reasonable piece of writing about gardening and soil quality today"

	tests := []struct {
		name     string
		keywords map[string]float64
		want     bool
	}{
		{"no keywords", map[string]float64{}, false},
		{"only stop words", map[string]float64{"the": 1, "And": 0.5, "WITH": 0.2}, false},
		{"only short keywords", map[string]float64{"go": 1, "ab": 0.4}, false},
		{"only numeric keywords", map[string]float64{"2024": 1, "100": 0.3}, false},
		{"one real keyword among noise", map[string]float64{"the": 1, "42": 0.5, "gardening": 0.9}, true},
		{"real keywords", map[string]float64{"gardening": 1, "soil": 0.8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMeaningful(text, tt.keywords); got != tt.want {
				t.Errorf("IsMeaningful = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsMeaningful_AcceptsDistinctProse(t *testing.T) {
	text := "ten distinct real words describing garden tools and seasonal planting"
	if !IsMeaningful(text, map[string]float64{"garden": 0.9}) {
		t.Error("expected acceptance of varied prose with a significant keyword")
	}
}
