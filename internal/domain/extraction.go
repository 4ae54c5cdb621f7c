package domain

import "context"

// KeyPrefix namespaces all Redis keys written by this service.
const KeyPrefix = "seo:"

// Extractor is the shared keyword/topic extraction contract between layers.
type Extractor interface {
	Extract(ctx context.Context, text string) (ExtractionResult, error)
}

// HealthChecker verifies extraction provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ExtractionResult carries keyword and topic weights plus token usage
// through the decorator chain. Weights come from an opaque external
// service and may be any non-negative floats.
type ExtractionResult struct {
	Keywords     map[string]float64
	Topics       map[string]float64
	PromptTokens int
	TotalTokens  int
}
