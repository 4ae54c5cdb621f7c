package analyze

import (
	"context"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
)

// Extractor obtains keyword and topic weights for a text.
type Extractor interface {
	Extract(ctx context.Context, text string) (domain.ExtractionResult, error)
}
