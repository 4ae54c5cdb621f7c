package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/config"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/db"
	dbRedis "github.com/hemantsinghrajput/Seo-analyzer/internal/db/redis"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
	logpkg "github.com/hemantsinghrajput/Seo-analyzer/internal/logger"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/metrics"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/repository/analysiscache"
	budgetrepo "github.com/hemantsinghrajput/Seo-analyzer/internal/repository/budget"
	chiTransport "github.com/hemantsinghrajput/Seo-analyzer/internal/transport/chi"
	openaiExt "github.com/hemantsinghrajput/Seo-analyzer/internal/transport/openai"
	analyzeuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/analyze"
	extractionuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/extraction"
	healthuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/health"
	usageuc "github.com/hemantsinghrajput/Seo-analyzer/internal/usecase/usage"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting seo-analyzer API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	ctx := context.Background()

	// Cache store is optional: without it, extraction results are not
	// cached and budget counters are in-memory only.
	var store db.Store
	if cfg.Cache.Enabled() {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	}

	// Register extraction metrics explicitly (no init())
	metrics.RegisterExtractionMetrics()

	provCfg := cfg.Extraction.Provider

	// Single BudgetTracker shared by the extractor chain and usage service.
	var budget *extractionuc.BudgetTracker
	budgetCfg := cfg.Extraction.Budget
	if budgetCfg.DailyTokenLimit > 0 || budgetCfg.MonthlyTokenLimit > 0 {
		action := extractionuc.BudgetActionWarn
		if budgetCfg.Action == "reject" {
			action = extractionuc.BudgetActionReject
		}
		budget = extractionuc.NewBudgetTracker(
			provCfg.Name, budgetCfg.DailyTokenLimit, budgetCfg.MonthlyTokenLimit, action, logger,
		)
		if store != nil {
			// Connect persistence store, loads current counters.
			budgetStore := budgetrepo.New(store, 48*time.Hour, 62*24*time.Hour)
			budget.WithStore(ctx, budgetStore)
		}
	}

	// Pass nil interface (not typed nil pointer!) if budget is not configured.
	// Go gotcha: (*BudgetTracker)(nil) wrapped in BudgetChecker != nil.
	var budgetChecker extractionuc.BudgetChecker
	if budget != nil {
		budgetChecker = budget
	}

	base := openaiExt.NewExtractor(&openaiExt.Config{
		APIKey:      provCfg.APIKey,
		BaseURL:     provCfg.BaseURL,
		Model:       provCfg.Model,
		MaxKeywords: cfg.Extraction.MaxKeywords,
		MaxTopics:   cfg.Extraction.MaxTopics,
		TimeoutSec:  provCfg.TimeoutSec,
		Provider:    provCfg.Name,
		Logger:      logger,
	})
	extractor := buildExtractor(base, cfg, store, budgetChecker, logger)
	logger.Info("Extractor created",
		zap.String("provider", provCfg.Name),
		zap.String("model", provCfg.Model),
		zap.Bool("cache", store != nil),
	)

	// Use case services
	analyzeSvc := analyzeuc.New(extractor, cfg.Analysis.MaxTextLength)

	var budgetReader usageuc.BudgetReader
	if budget != nil {
		budgetReader = budget
	}
	usageSvc := usageuc.New(budgetReader)

	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, newExtractionHealthChecker(base))

	server := chiTransport.NewServer(analyzeSvc, usageSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildExtractor assembles the decorator chain: OpenAI -> Cached -> Instrumented.
func buildExtractor(
	base domain.Extractor,
	cfg config.Config,
	store db.Store,
	budget extractionuc.BudgetChecker,
	logger *zap.Logger,
) domain.Extractor {
	extractor := base
	if store != nil {
		ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
		extractor = analysiscache.New(base, store, ttl, metrics.ExtractionCacheTotal, logger)
	}

	return extractionuc.NewInstrumentedExtractor(
		extractor, cfg.Extraction.Provider.Name, cfg.Extraction.Provider.Model, budget, logger,
	)
}

// extractionHealthChecker wraps domain.Extractor to implement health.ExtractionChecker.
type extractionHealthChecker struct {
	extractor domain.Extractor
}

func newExtractionHealthChecker(extractor domain.Extractor) *extractionHealthChecker {
	return &extractionHealthChecker{extractor: extractor}
}

func (h *extractionHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.extractor.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("extraction health check: %w", err)
		}
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
