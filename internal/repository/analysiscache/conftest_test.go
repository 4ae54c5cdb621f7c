package analysiscache

import (
	"context"
	"time"

	"github.com/hemantsinghrajput/Seo-analyzer/internal/db"
	"github.com/hemantsinghrajput/Seo-analyzer/internal/domain"
)

// mockExtractor records calls and returns a canned result.
type mockExtractor struct {
	result domain.ExtractionResult
	err    error
	calls  int
}

func (m *mockExtractor) Extract(_ context.Context, _ string) (domain.ExtractionResult, error) {
	m.calls++
	if m.err != nil {
		return domain.ExtractionResult{}, m.err
	}
	return m.result, nil
}

// mockStore is an in-memory KV store for cache tests.
type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, &db.Error{Op: db.OpGet, Err: db.ErrKeyNotFound}
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.lastTTL = ttl
	return nil
}
