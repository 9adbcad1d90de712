package strategy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"repair-assistant/pkg/ifixit"
	"repair-assistant/pkg/tavily"
)

type mockIFixit struct {
	device     string
	deviceErr  error
	guides     []ifixit.GuideSummary
	details    map[int]*ifixit.GuideDetails
	detailErrs map[int]error
	block      chan struct{}

	searchCalls atomic.Int32
	mu          sync.Mutex
	searched    []string
}

func (m *mockIFixit) SearchDevice(ctx context.Context, query string) (string, error) {
	m.searchCalls.Add(1)
	m.mu.Lock()
	m.searched = append(m.searched, query)
	m.mu.Unlock()
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return m.device, m.deviceErr
}

func (m *mockIFixit) ListGuides(_ context.Context, _ string) ([]ifixit.GuideSummary, error) {
	return m.guides, nil
}

func (m *mockIFixit) GetGuideDetails(_ context.Context, id int) (*ifixit.GuideDetails, error) {
	if err := m.detailErrs[id]; err != nil {
		return nil, err
	}
	return m.details[id], nil
}

type mockSearcher struct {
	resp  *tavily.SearchResponse
	err   error
	calls atomic.Int32
}

func (m *mockSearcher) Search(_ context.Context, _ string) (*tavily.SearchResponse, error) {
	m.calls.Add(1)
	return m.resp, m.err
}

type mockNormalizer struct {
	name string
}

func (m *mockNormalizer) NormalizeDevice(_ context.Context, text string) string {
	if m.name == "" {
		return text
	}
	return m.name
}

// countingCache is a map-backed cache that records writes and can fail reads.
type countingCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    int
	readErr error
}

func newCountingCache() *countingCache {
	return &countingCache{data: map[string][]byte{}}
}

func (c *countingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return nil, false, c.readErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *countingCache) Put(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.data[key] = value
	return nil
}

func (c *countingCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

var errProvider = errors.New("provider down")
