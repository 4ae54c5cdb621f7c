package seo

import "time"

// Keyword is an extracted keyword with its relevance weight.
type Keyword struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
}

// AnalyzeResult is the outcome of a text analysis.
type AnalyzeResult struct {
	Keywords      []Keyword `json:"keywords"`
	Score         int       `json:"score"`
	ScoreCategory string    `json:"scoreCategory"`
	Topic         string    `json:"topic,omitempty"`
	TopicScore    float64   `json:"topicScore,omitempty"`
	TotalKeywords int       `json:"totalKeywords"`
	TextLength    int       `json:"textLength"`
	WordCount     int       `json:"wordCount"`

	// Message is set instead of keywords when the content filter
	// rejected the text (score is 0 in that case).
	Message string `json:"message,omitempty"`

	// ExtractionTokens is the provider token count for this request,
	// taken from the X-Extraction-Tokens response header. Zero on
	// cache hits.
	ExtractionTokens int `json:"-"`
}

// UsagePeriod is the aggregation granularity for usage reports.
type UsagePeriod string

// UsagePeriod constants.
const (
	PeriodDay   UsagePeriod = "day"
	PeriodMonth UsagePeriod = "month"
	PeriodTotal UsagePeriod = "total"
)

// UsageMetrics tracks extraction resource consumption.
type UsageMetrics struct {
	Tokens int64 `json:"tokens"`
}

// BudgetStatus tracks token quota state.
type BudgetStatus struct {
	TokensLimit     int64      `json:"tokensLimit"`
	TokensRemaining int64      `json:"tokensRemaining"`
	IsExhausted     bool       `json:"isExhausted"`
	ResetsAt        *time.Time `json:"resetsAt,omitempty"`
}

// UsageReport contains extraction usage statistics for a time period.
type UsageReport struct {
	Period        UsagePeriod  `json:"period"`
	PeriodStartAt *time.Time   `json:"periodStartAt,omitempty"`
	PeriodEndAt   *time.Time   `json:"periodEndAt,omitempty"`
	Usage         UsageMetrics `json:"usage"`
	Budget        BudgetStatus `json:"budget"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
