// Package budget persists extraction token counters in the KV store.
// Counters are plain integers under seo:budget:{provider}:daily:... and
// :monthly:... keys, incremented write-behind by the budget tracker.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/db"
)

// store is the slice of the KV store the budget counters need.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Store persists token budget counters via INCRBY, expiring daily keys
// after dailyTTL and monthly keys after monthTTL.
type Store struct {
	kv       store
	dailyTTL time.Duration
	monthTTL time.Duration
}

// New creates a budget store. dailyTTL should outlive a day boundary
// crossing (48h works), monthTTL a month boundary (62 days works).
func New(kv store, dailyTTL, monthTTL time.Duration) *Store {
	return &Store{kv: kv, dailyTTL: dailyTTL, monthTTL: monthTTL}
}

// IncrBy atomically increments the counter and arms its TTL. The TTL is
// applied with NX so repeated increments never push the expiry out.
func (s *Store) IncrBy(ctx context.Context, key string, val int64) error {
	if err := s.kv.IncrBy(ctx, key, val); err != nil {
		return fmt.Errorf("budget INCRBY %s: %w", key, err)
	}

	ttl := s.monthTTL
	if strings.Contains(key, ":daily:") {
		ttl = s.dailyTTL
	}
	if err := s.kv.Expire(ctx, key, ttl, true); err != nil {
		return fmt.Errorf("budget EXPIRE %s: %w", key, err)
	}
	return nil
}

// Get returns the current counter value, or 0 when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (int64, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("budget GET %s: %w", key, err)
	}

	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("budget GET %s parse: %w", key, err)
	}
	return val, nil
}
