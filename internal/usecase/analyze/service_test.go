package analyze

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
)

const sampleText = "Search engines reward sites that publish detailed technical articles on a consistent schedule."

func TestAnalyze_EmptyText(t *testing.T) {
	s := New(&mockExtractor{}, 0)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := s.Analyze(context.Background(), text)
		if !errors.Is(err, domain.ErrTextEmpty) {
			t.Errorf("Analyze(%q) error = %v, want ErrTextEmpty", text, err)
		}
	}
}

func TestAnalyze_TextTooLong(t *testing.T) {
	ext := &mockExtractor{}
	s := New(ext, 10)

	_, err := s.Analyze(context.Background(), "this text is clearly longer than ten runes")
	if !errors.Is(err, domain.ErrTextTooLong) {
		t.Fatalf("Analyze() error = %v, want ErrTextTooLong", err)
	}
	if ext.calls != 0 {
		t.Errorf("extractor calls = %d, want 0 (length check precedes extraction)", ext.calls)
	}
}

func TestAnalyze_ExtractorErrorPropagated(t *testing.T) {
	wantErr := errors.New("provider down")
	s := New(&mockExtractor{err: wantErr}, 0)

	_, err := s.Analyze(context.Background(), sampleText)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Analyze() error = %v, want wrapping %v", err, wantErr)
	}
}

func TestAnalyze_ScoredReport(t *testing.T) {
	ext := &mockExtractor{result: domain.ExtractionResult{
		Keywords: map[string]float64{"seo": 0.9, "articles": 0.7, "schedule": 0.7},
		Topics:   map[string]float64{"marketing": 0.8, "publishing": 0.5},
	}}
	s := New(ext, 0)

	report, err := s.Analyze(context.Background(), sampleText)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Score <= 0 || report.Score > 100 {
		t.Errorf("Score = %d, want in (0, 100]", report.Score)
	}
	if report.Category == "" {
		t.Error("Category is empty")
	}
	if report.Message != "" {
		t.Errorf("Message = %q, want empty for scored report", report.Message)
	}
	if report.Topic != "marketing" || report.TopicScore != 0.8 {
		t.Errorf("Topic = %q/%v, want marketing/0.8", report.Topic, report.TopicScore)
	}
	if report.TotalKeywords != 3 {
		t.Errorf("TotalKeywords = %d, want 3", report.TotalKeywords)
	}
	if want := utf8.RuneCountInString(sampleText); report.TextLength != want {
		t.Errorf("TextLength = %d, want %d", report.TextLength, want)
	}
	if want := len(strings.Fields(sampleText)); report.WordCount != want {
		t.Errorf("WordCount = %d, want %d", report.WordCount, want)
	}

	// Descending weight, name tie-break for equal weights.
	wantOrder := []string{"seo", "articles", "schedule"}
	if len(report.Keywords) != len(wantOrder) {
		t.Fatalf("len(Keywords) = %d, want %d", len(report.Keywords), len(wantOrder))
	}
	for i, want := range wantOrder {
		if report.Keywords[i].Keyword != want {
			t.Errorf("Keywords[%d] = %q, want %q", i, report.Keywords[i].Keyword, want)
		}
	}
}

func TestAnalyze_TextIsTrimmedBeforeExtraction(t *testing.T) {
	ext := &mockExtractor{result: domain.ExtractionResult{
		Keywords: map[string]float64{"seo": 0.9},
		Topics:   map[string]float64{"marketing": 0.8},
	}}
	s := New(ext, 0)

	_, err := s.Analyze(context.Background(), "  "+sampleText+"\n")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if ext.got != sampleText {
		t.Errorf("extractor received %q, want trimmed text", ext.got)
	}
}

func TestAnalyze_FilterRejectionReturnsZeroReport(t *testing.T) {
	// Placeholder text trips the content filter regardless of keywords.
	ext := &mockExtractor{result: domain.ExtractionResult{
		Keywords: map[string]float64{"lorem": 1.0},
		Topics:   map[string]float64{"latin": 0.9},
	}}
	s := New(ext, 0)

	report, err := s.Analyze(context.Background(), "Lorem ipsum dolor sit amet consectetur adipiscing elit")
	if err != nil {
		t.Fatalf("Analyze() error = %v, filter rejection must not be an error", err)
	}
	if report.Score != 0 {
		t.Errorf("Score = %d, want 0", report.Score)
	}
	if report.Category != "very-low" {
		t.Errorf("Category = %q, want very-low", report.Category)
	}
	if len(report.Keywords) != 0 {
		t.Errorf("len(Keywords) = %d, want 0", len(report.Keywords))
	}
	if report.Message == "" {
		t.Error("Message is empty, want explanation")
	}
	if report.TextLength == 0 || report.WordCount == 0 {
		t.Errorf("counts not populated: textLength=%d wordCount=%d", report.TextLength, report.WordCount)
	}
}

func TestAnalyze_RecordsTokenUsage(t *testing.T) {
	ext := &mockExtractor{result: domain.ExtractionResult{
		Keywords:    map[string]float64{"seo": 0.9},
		Topics:      map[string]float64{"marketing": 0.8},
		TotalTokens: 57,
	}}
	s := New(ext, 0)

	ctx, usage := domain.NewContextWithUsage(context.Background())
	if _, err := s.Analyze(ctx, sampleText); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if usage.TotalTokens != 57 {
		t.Errorf("usage.TotalTokens = %d, want 57", usage.TotalTokens)
	}
	if !usage.Used {
		t.Error("usage.Used = false, want true")
	}
}

func TestInsertKeyword(t *testing.T) {
	s := New(&mockExtractor{}, 0)

	got, err := s.InsertKeyword("I like cats. They are great.", "feline")
	if err != nil {
		t.Fatalf("InsertKeyword() error = %v", err)
	}
	if want := "I like cats feline. They are great."; got != want {
		t.Errorf("InsertKeyword() = %q, want %q", got, want)
	}
}

func TestInsertKeyword_Validation(t *testing.T) {
	s := New(&mockExtractor{}, 0)

	if _, err := s.InsertKeyword("  ", "kw"); !errors.Is(err, domain.ErrTextEmpty) {
		t.Errorf("blank text error = %v, want ErrTextEmpty", err)
	}
	if _, err := s.InsertKeyword("some text", "  "); !errors.Is(err, domain.ErrKeywordEmpty) {
		t.Errorf("blank keyword error = %v, want ErrKeywordEmpty", err)
	}
}
