// Package chi exposes the analysis service over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
	domusage "github.com/hemantsinghrajput/Seo-analyzer/internal/domain/usage"
	analyzeuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/analyze"
	healthuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/health"
	usageuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/usage"
)

// ErrorResponseCode identifies the error class in an ErrorResponse.
type ErrorResponseCode string

// Error codes returned to clients.
const (
	ErrorCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorCodeTextTooLong      ErrorResponseCode = "text_too_long"
	ErrorCodeQuotaExceeded    ErrorResponseCode = "extraction_quota_exceeded"
	ErrorCodeProviderError    ErrorResponseCode = "extraction_provider_error"
	ErrorCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the JSON error body for all non-2xx responses.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

type analyzeRequest struct {
	Text          string `json:"text"`
	InsertKeyword string `json:"insertKeyword,omitempty"`
}

type keywordItem struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
}

type analyzeResponse struct {
	Keywords      []keywordItem `json:"keywords"`
	Score         int           `json:"score"`
	ScoreCategory string        `json:"scoreCategory"`
	Topic         string        `json:"topic,omitempty"`
	TopicScore    float64       `json:"topicScore,omitempty"`
	TotalKeywords int           `json:"totalKeywords"`
	TextLength    int           `json:"textLength"`
	WordCount     int           `json:"wordCount"`
	Message       string        `json:"message,omitempty"`
}

type insertKeywordResponse struct {
	UpdatedText string `json:"updatedText"`
}

type usageMetrics struct {
	Tokens int64 `json:"tokens"`
}

type budgetStatus struct {
	TokensLimit     int64      `json:"tokensLimit"`
	TokensRemaining int64      `json:"tokensRemaining"`
	IsExhausted     bool       `json:"isExhausted"`
	ResetsAt        *time.Time `json:"resetsAt,omitempty"`
}

type usageResponse struct {
	Period        string       `json:"period"`
	PeriodStartAt *time.Time   `json:"periodStartAt,omitempty"`
	PeriodEndAt   *time.Time   `json:"periodEndAt,omitempty"`
	Usage         usageMetrics `json:"usage"`
	Budget        budgetStatus `json:"budget"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Server routes HTTP requests to the use case services.
type Server struct {
	analyze       *analyzeuc.Service
	usage         *usageuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	analyze *analyzeuc.Service,
	usage *usageuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		analyze: analyze,
		usage:   usage,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrExtractionQuotaExceeded, http.StatusPaymentRequired, ErrorCodeQuotaExceeded),
		sentinelHandler(domain.ErrExtractionProviderError, http.StatusBadGateway, ErrorCodeProviderError),
		sentinelHandler(domain.ErrTextTooLong, http.StatusBadRequest, ErrorCodeTextTooLong),
		sentinelHandler(domain.ErrTextEmpty, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrKeywordEmpty, http.StatusBadRequest, ErrorCodeValidationFailed),
	}
	return s
}

// Routes registers all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Index)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.Analyze)
		r.Get("/usage", s.GetUsage)
	})
}

// Analyze handles POST /api/v1/analyze.
// With insertKeyword set it rewrites the text; otherwise it scores it.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "Text is required")
		return
	}

	if req.InsertKeyword != "" {
		updated, err := s.analyze.InsertKeyword(req.Text, req.InsertKeyword)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, insertKeywordResponse{UpdatedText: updated})
		return
	}

	ctx, usage := domain.NewContextWithUsage(r.Context())
	report, err := s.analyze.Analyze(ctx, req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setExtractionHeaders(w, usage)
	writeJSON(w, http.StatusOK, reportToResponse(report))
}

// GetUsage handles GET /api/v1/usage.
func (s *Server) GetUsage(w http.ResponseWriter, r *http.Request) {
	period := domusage.PeriodMonth
	switch r.URL.Query().Get("period") {
	case "day":
		period = domusage.PeriodDay
	case "total":
		period = domusage.PeriodTotal
	case "", "month":
	default:
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "period must be day, month, or total")
		return
	}

	report := s.usage.GetReport(r.Context(), period)

	resp := usageResponse{
		Period: string(report.Period()),
		Usage:  usageMetrics{Tokens: report.TokensUsed()},
		Budget: budgetStatus{
			TokensLimit:     report.Budget().TokensLimit(),
			TokensRemaining: report.Budget().TokensRemaining(),
			IsExhausted:     report.Budget().IsExhausted(),
		},
	}

	if report.PeriodStart() > 0 {
		start := time.UnixMilli(report.PeriodStart()).UTC()
		end := time.UnixMilli(report.PeriodEnd()).UTC()
		resp.PeriodStartAt = &start
		resp.PeriodEndAt = &end
	}

	if report.Budget().ResetsAt() > 0 {
		resetsAt := time.UnixMilli(report.Budget().ResetsAt()).UTC()
		resp.Budget.ResetsAt = &resetsAt
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func reportToResponse(report domain.Report) analyzeResponse {
	keywords := make([]keywordItem, len(report.Keywords))
	for i, k := range report.Keywords {
		keywords[i] = keywordItem{Keyword: k.Keyword, Weight: k.Weight}
	}
	return analyzeResponse{
		Keywords:      keywords,
		Score:         report.Score,
		ScoreCategory: report.Category,
		Topic:         report.Topic,
		TopicScore:    report.TopicScore,
		TotalKeywords: report.TotalKeywords,
		TextLength:    report.TextLength,
		WordCount:     report.WordCount,
		Message:       report.Message,
	}
}

func setExtractionHeaders(w http.ResponseWriter, usage *domain.ExtractionUsage) {
	if usage != nil && usage.Used {
		w.Header().Set("X-Extraction-Tokens", strconv.Itoa(usage.TotalTokens))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrTextEmpty,
		domain.ErrTextTooLong,
		domain.ErrKeywordEmpty,
		domain.ErrExtractionQuotaExceeded,
		domain.ErrExtractionProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
