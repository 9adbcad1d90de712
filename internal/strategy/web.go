package strategy

import (
	"context"

	"repair-assistant/internal/repair"
)

// Resolve returns a web answer for query, consulting the cache first.
func (s *WebStrategy) Resolve(ctx context.Context, query string) *repair.WebResult {
	return s.resolver.resolve(ctx, query, false, s.fetcher(query))
}

// Refresh re-runs the search and replaces the cache entry on success.
func (s *WebStrategy) Refresh(ctx context.Context, query string) *repair.WebResult {
	return s.resolver.resolve(ctx, query, true, s.fetcher(query))
}

func (s *WebStrategy) fetcher(query string) func(context.Context) (*repair.WebResult, error) {
	return func(ctx context.Context) (*repair.WebResult, error) {
		resp, err := s.provider.Search(ctx, query)
		if err != nil {
			return nil, err
		}

		out := &repair.WebResult{
			Answer:  resp.Answer,
			Sources: make([]repair.Source, 0, len(resp.Results)),
		}
		for _, r := range resp.Results {
			out.Sources = append(out.Sources, repair.Source{
				Title:   r.Title,
				URL:     r.URL,
				Snippet: r.Content,
			})
		}
		s.l.Debugf(ctx, "%s: %d sources, answer=%t", LogPrefixWeb, len(out.Sources), out.Answer != "")
		return out, nil
	}
}
