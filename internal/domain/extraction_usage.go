package domain

import "context"

type extractionUsageKey struct{}

// ExtractionUsage collects token usage for a single HTTP request.
// The handler puts a mutable pointer into the context before calling the
// service; the service writes after extraction; the handler reads it for
// response headers.
type ExtractionUsage struct {
	TotalTokens int
	Used        bool // true if extraction was called, even on a cache hit with 0 tokens
}

// NewContextWithUsage returns a context with an attached usage collector.
func NewContextWithUsage(ctx context.Context) (context.Context, *ExtractionUsage) {
	u := &ExtractionUsage{}
	return context.WithValue(ctx, extractionUsageKey{}, u), u
}

// UsageFromContext extracts the usage collector from context. Returns nil if not set.
func UsageFromContext(ctx context.Context) *ExtractionUsage {
	u, _ := ctx.Value(extractionUsageKey{}).(*ExtractionUsage)
	return u
}

// AddTokens records consumed tokens.
func (u *ExtractionUsage) AddTokens(n int) {
	if u != nil {
		u.TotalTokens += n
		u.Used = true
	}
}
