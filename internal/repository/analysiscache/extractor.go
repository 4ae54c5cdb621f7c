// Package analysiscache caches extraction results in a key-value store
// so identical texts never hit the provider twice within the TTL.
package analysiscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/db"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "extract_cache:"

// store is the consumer interface for the extraction cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// cachedExtraction is the JSON wire format for cached entries.
type cachedExtraction struct {
	Keywords map[string]float64 `json:"keywords"`
	Topics   map[string]float64 `json:"topics"`
}

// CachedExtractor caches extraction results in a key-value store.
type CachedExtractor struct {
	inner      domain.Extractor
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Extractor,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedExtractor {
	return &CachedExtractor{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Extract returns a cached result or calls the inner extractor.
// Cache hit: TotalTokens = 0 (no real tokens consumed).
// Cache miss: full ExtractionResult from inner.
func (c *CachedExtractor) Extract(ctx context.Context, text string) (domain.ExtractionResult, error) {
	key := c.cacheKey(text)

	if res, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return res, nil
	}

	c.incCache("miss")

	result, err := c.inner.Extract(ctx, text)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("extract text: %w", err)
	}

	c.putToCache(ctx, key, result)
	return result, nil
}

func (c *CachedExtractor) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedExtractor) cacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedExtractor) getFromCache(ctx context.Context, key string) (domain.ExtractionResult, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached extraction", zap.String("key", key), zap.Error(err))
		}
		return domain.ExtractionResult{}, false
	}
	if len(data) == 0 {
		return domain.ExtractionResult{}, false
	}

	var entry cachedExtraction
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("Failed to parse cached extraction", zap.String("key", key), zap.Error(err))
		return domain.ExtractionResult{}, false
	}

	return domain.ExtractionResult{
		Keywords: entry.Keywords,
		Topics:   entry.Topics,
	}, true
}

func (c *CachedExtractor) putToCache(ctx context.Context, key string, res domain.ExtractionResult) {
	data, err := json.Marshal(cachedExtraction{
		Keywords: res.Keywords,
		Topics:   res.Topics,
	})
	if err != nil {
		c.logger.Warn("Failed to encode extraction for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache extraction", zap.String("key", key), zap.Error(err))
	}
}
