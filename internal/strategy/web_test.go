package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/log"
	"repair-assistant/pkg/tavily"
)

func TestWeb_ResolveMapsAndCaches(t *testing.T) {
	p := &mockSearcher{resp: &tavily.SearchResponse{
		Answer:  "Clean the fan.",
		Results: []tavily.Result{{Title: "PS5 fan", URL: "https://x", Content: "dust"}},
	}}
	cache := newCountingCache()
	s := NewWeb(p, cache, Options{}, log.NewNop())
	ctx := context.Background()

	res := s.Resolve(ctx, "PS5  Fan Noise")
	require.NotNil(t, res)
	assert.Equal(t, "Clean the fan.", res.Answer)
	assert.Equal(t, []repair.Source{{Title: "PS5 fan", URL: "https://x", Snippet: "dust"}}, res.Sources)
	assert.True(t, cache.has("web:ps5 fan noise"))

	again := s.Resolve(ctx, "ps5 fan noise")
	assert.Equal(t, res, again)
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestWeb_EmptyAndFailureNotCached(t *testing.T) {
	tests := []struct {
		name string
		p    *mockSearcher
	}{
		{"error", &mockSearcher{err: errProvider}},
		{"no answer no sources", &mockSearcher{resp: &tavily.SearchResponse{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newCountingCache()
			s := NewWeb(tt.p, cache, Options{}, log.NewNop())

			assert.Nil(t, s.Resolve(context.Background(), "q"))
			assert.Zero(t, cache.puts)
		})
	}
}

func TestWeb_SourcesOnly(t *testing.T) {
	p := &mockSearcher{resp: &tavily.SearchResponse{Results: []tavily.Result{{Title: "t", URL: "u"}}}}
	s := NewWeb(p, newCountingCache(), Options{}, log.NewNop())

	res := s.Resolve(context.Background(), "q")
	require.NotNil(t, res)
	assert.Empty(t, res.Answer)
	assert.Len(t, res.Sources, 1)
}

func TestWeb_Refresh(t *testing.T) {
	p := &mockSearcher{resp: &tavily.SearchResponse{Answer: "new"}}
	cache := newCountingCache()
	cache.data["web:q"] = []byte(`{"answer":"old","sources":[]}`)
	s := NewWeb(p, cache, Options{}, log.NewNop())
	ctx := context.Background()

	assert.Equal(t, "old", s.Resolve(ctx, "q").Answer)
	assert.Equal(t, "new", s.Refresh(ctx, "q").Answer)
	assert.Equal(t, "new", s.Resolve(ctx, "q").Answer)
	assert.Equal(t, int32(1), p.calls.Load())
}
