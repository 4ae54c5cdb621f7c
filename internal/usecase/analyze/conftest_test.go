package analyze

import (
	"context"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
)

// mockExtractor returns a canned extraction result.
type mockExtractor struct {
	result domain.ExtractionResult
	err    error
	calls  int
	got    string
}

func (m *mockExtractor) Extract(_ context.Context, text string) (domain.ExtractionResult, error) {
	m.calls++
	m.got = text
	if m.err != nil {
		return domain.ExtractionResult{}, m.err
	}
	return m.result, nil
}
