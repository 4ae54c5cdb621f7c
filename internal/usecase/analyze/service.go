// Package analyze implements the text analysis use case: keyword and topic
// extraction gated through the content filter, then scoring.
package analyze

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain/content"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain/keyword"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain/score"
)

// notMeaningfulMessage explains a zero-score report for rejected content.
const notMeaningfulMessage = "content does not appear meaningful enough to score; provide real prose instead of placeholder or repetitive text"

// Service handles text analysis and keyword insertion.
type Service struct {
	extractor     Extractor
	maxTextLength int
}

// New creates an analyze service.
// maxTextLength caps accepted input in runes; 0 disables the cap.
func New(extractor Extractor, maxTextLength int) *Service {
	return &Service{
		extractor:     extractor,
		maxTextLength: maxTextLength,
	}
}

// Analyze extracts keywords and topics from text and scores it.
// Filter rejections are not errors: they produce a zero-score report
// with a message so the caller can show the reason to the user.
func (s *Service) Analyze(ctx context.Context, text string) (domain.Report, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Report{}, domain.ErrTextEmpty
	}
	if s.maxTextLength > 0 && utf8.RuneCountInString(trimmed) > s.maxTextLength {
		return domain.Report{}, fmt.Errorf("%w: %d runes (max %d)",
			domain.ErrTextTooLong, utf8.RuneCountInString(trimmed), s.maxTextLength)
	}

	result, err := s.extractor.Extract(ctx, trimmed)
	if err != nil {
		return domain.Report{}, fmt.Errorf("extract keywords: %w", err)
	}

	if usage := domain.UsageFromContext(ctx); usage != nil {
		usage.AddTokens(result.TotalTokens)
	}

	textLength := utf8.RuneCountInString(trimmed)
	wordCount := len(strings.Fields(trimmed))

	if !content.IsMeaningful(trimmed, result.Keywords) {
		return domain.Report{
			Score:      0,
			Category:   string(score.CategoryVeryLow),
			Keywords:   []domain.RankedKeyword{},
			TextLength: textLength,
			WordCount:  wordCount,
			Message:    notMeaningfulMessage,
		}, nil
	}

	value := score.Calculate(result.Keywords, result.Topics, trimmed)
	topic, topicScore := primaryTopic(result.Topics)

	return domain.Report{
		Score:         value,
		Category:      string(score.CategoryFor(value)),
		Keywords:      rankKeywords(result.Keywords),
		Topic:         topic,
		TopicScore:    topicScore,
		TotalKeywords: len(result.Keywords),
		TextLength:    textLength,
		WordCount:     wordCount,
	}, nil
}

// InsertKeyword inserts the keyword into the text's first sentence.
func (s *Service) InsertKeyword(text, kw string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrTextEmpty
	}
	if strings.TrimSpace(kw) == "" {
		return "", domain.ErrKeywordEmpty
	}
	return keyword.Insert(text, kw), nil
}

// rankKeywords orders keywords by descending weight.
// Equal weights break ties by name so the order is deterministic.
func rankKeywords(keywords map[string]float64) []domain.RankedKeyword {
	ranked := make([]domain.RankedKeyword, 0, len(keywords))
	for k, w := range keywords {
		ranked = append(ranked, domain.RankedKeyword{Keyword: k, Weight: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	return ranked
}

// primaryTopic returns the highest-weight topic (name-ascending tie-break).
func primaryTopic(topics map[string]float64) (string, float64) {
	var name string
	var weight float64
	for t, w := range topics {
		if w > weight || (w == weight && (name == "" || t < name)) {
			name = t
			weight = w
		}
	}
	return name, weight
}
