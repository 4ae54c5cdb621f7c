// Package openai implements the keyword/topic extraction provider over
// an OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/metrics"
)

const systemPrompt = `You are a lexical analysis engine. Given a text, extract its SEO keywords and topics.
Respond with strict JSON only, no prose, in this exact shape:
{"keywords": {"<keyword>": <relevance 0..1>, ...}, "topics": {"<topic>": <relevance 0..1>, ...}}
Return at most %d keywords and %d topics, ordered by relevance.`

// Extractor is a keyword/topic extraction provider using the
// OpenAI-compatible chat completion API.
type Extractor struct {
	client      *openai.Client
	model       string
	maxKeywords int
	maxTopics   int
	provider    string
	logger      *zap.Logger
}

// Config holds the extraction provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxKeywords int
	MaxTopics   int
	TimeoutSec  int
	Provider    string
	Logger      *zap.Logger
}

// NewExtractor creates an OpenAI-compatible extraction provider.
func NewExtractor(cfg *Config) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.TimeoutSec > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second}
	}

	return &Extractor{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxKeywords: cfg.MaxKeywords,
		maxTopics:   cfg.MaxTopics,
		provider:    cfg.Provider,
		logger:      cfg.Logger,
	}
}

// Extract implements domain.Extractor. Returns keyword and topic weight
// maps with transport-level metrics.
func (e *Extractor) Extract(ctx context.Context, text string) (domain.ExtractionResult, error) {
	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPrompt, e.maxKeywords, e.maxTopics),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(e.provider, e.model, "error").Inc()
		metrics.ExtractionErrorsTotal.WithLabelValues(e.provider, e.model, "api_error").Inc()
		return domain.ExtractionResult{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.ExtractionRequestsTotal.WithLabelValues(e.provider, e.model, "error").Inc()
		metrics.ExtractionErrorsTotal.WithLabelValues(e.provider, e.model, "empty_response").Inc()
		return domain.ExtractionResult{}, fmt.Errorf("empty extraction response: %w", domain.ErrExtractionProviderError)
	}

	parsed, err := parseExtraction(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(e.provider, e.model, "error").Inc()
		metrics.ExtractionErrorsTotal.WithLabelValues(e.provider, e.model, "malformed_response").Inc()
		return domain.ExtractionResult{}, fmt.Errorf("parse extraction response: %v: %w", err, domain.ErrExtractionProviderError)
	}

	// Record success metrics
	metrics.ExtractionRequestsTotal.WithLabelValues(e.provider, e.model, "success").Inc()
	metrics.ExtractionRequestDuration.WithLabelValues(e.provider, e.model).Observe(duration.Seconds())

	totalTokens := resp.Usage.TotalTokens
	promptTokens := resp.Usage.PromptTokens
	if totalTokens > 0 {
		metrics.ExtractionTokensTotal.WithLabelValues(e.provider, e.model, "prompt").Add(float64(promptTokens))
		metrics.ExtractionTokensTotal.WithLabelValues(e.provider, e.model, "total").Add(float64(totalTokens))
	}

	return domain.ExtractionResult{
		Keywords:     clampTop(parsed.Keywords, e.maxKeywords),
		Topics:       clampTop(parsed.Topics, e.maxTopics),
		PromptTokens: promptTokens,
		TotalTokens:  totalTokens,
	}, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (e *Extractor) HealthCheck(ctx context.Context) error {
	if _, err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

type extractionPayload struct {
	Keywords map[string]float64 `json:"keywords"`
	Topics   map[string]float64 `json:"topics"`
}

// parseExtraction decodes the model's JSON reply. The model is untrusted:
// missing maps become empty, but non-JSON replies are an error.
func parseExtraction(content string) (extractionPayload, error) {
	var p extractionPayload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return extractionPayload{}, fmt.Errorf("unmarshal: %w", err)
	}
	if p.Keywords == nil {
		p.Keywords = map[string]float64{}
	}
	if p.Topics == nil {
		p.Topics = map[string]float64{}
	}
	return p, nil
}

// clampTop keeps the max highest-weighted entries. Name-ascending
// tie-break keeps the cut deterministic.
func clampTop(weights map[string]float64, max int) map[string]float64 {
	if max <= 0 || len(weights) <= max {
		return weights
	}

	type entry struct {
		name   string
		weight float64
	}
	entries := make([]entry, 0, len(weights))
	for name, w := range weights {
		entries = append(entries, entry{name, w})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].name < entries[j].name
	})

	out := make(map[string]float64, max)
	for _, e := range entries[:max] {
		out[e.name] = e.weight
	}
	return out
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrExtractionProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrExtractionProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("extraction API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("extraction API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("extraction request failed: %w", wrap)
}
