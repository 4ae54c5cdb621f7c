package domain

// RankedKeyword is a keyword with its relevance weight, ordered for display.
type RankedKeyword struct {
	Keyword string
	Weight  float64
}

// Report is the outcome of a single text analysis. It lives for one
// request only and is never persisted.
type Report struct {
	Score         int
	Category      string
	Keywords      []RankedKeyword
	Topic         string
	TopicScore    float64
	TotalKeywords int
	TextLength    int
	WordCount     int

	// Message explains a zero-score report when the content filter
	// rejected the input. Empty for scored reports.
	Message string
}
