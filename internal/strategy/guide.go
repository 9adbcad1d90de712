package strategy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"repair-assistant/internal/repair"
	"repair-assistant/pkg/ifixit"
)

// Resolve returns guides for the intent, consulting the cache first.
func (s *GuideStrategy) Resolve(ctx context.Context, intent *repair.Intent) *repair.GuideResult {
	if intent == nil {
		return nil
	}
	return s.resolver.resolve(ctx, intent.RawQuery, false, s.fetcher(intent))
}

// Refresh re-fetches from iFixit and replaces the cache entry on success.
func (s *GuideStrategy) Refresh(ctx context.Context, intent *repair.Intent) *repair.GuideResult {
	if intent == nil {
		return nil
	}
	return s.resolver.resolve(ctx, intent.RawQuery, true, s.fetcher(intent))
}

func (s *GuideStrategy) fetcher(intent *repair.Intent) func(context.Context) (*repair.GuideResult, error) {
	return func(ctx context.Context) (*repair.GuideResult, error) {
		return s.fetch(ctx, intent)
	}
}

func (s *GuideStrategy) fetch(ctx context.Context, intent *repair.Intent) (*repair.GuideResult, error) {
	text := s.searchText(ctx, intent)
	if text == "" {
		return nil, nil
	}

	device, err := s.provider.SearchDevice(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search device: %w", err)
	}
	if device == "" {
		s.l.Infof(ctx, "%s: no device match for %q", LogPrefixGuide, text)
		return nil, nil
	}

	summaries, err := s.provider.ListGuides(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	if len(summaries) == 0 {
		return nil, nil
	}

	top := rankGuides(summaries, intent, s.maxGuides)
	guides := s.fetchDetails(ctx, top)
	if len(guides) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &repair.GuideResult{Device: device, Guides: guides}, nil
}

// searchText prefers the intent's device, then a normalized raw query.
func (s *GuideStrategy) searchText(ctx context.Context, intent *repair.Intent) string {
	if text := intent.SearchText(); text != "" {
		return text
	}
	if s.normalizer != nil {
		return s.normalizer.NormalizeDevice(ctx, intent.RawQuery)
	}
	return intent.RawQuery
}

// fetchDetails fetches guides concurrently, keeping rank order and dropping failures.
func (s *GuideStrategy) fetchDetails(ctx context.Context, top []ifixit.GuideSummary) []repair.Guide {
	details := make([]*ifixit.GuideDetails, len(top))

	var g errgroup.Group
	g.SetLimit(detailFetchConcurrency)
	for i, summary := range top {
		if summary.GuideID == 0 {
			continue
		}
		g.Go(func() error {
			d, err := s.provider.GetGuideDetails(ctx, summary.GuideID)
			if err != nil {
				s.l.Warnf(ctx, "%s: dropping guide %d: %v", LogPrefixGuide, summary.GuideID, err)
				return nil
			}
			details[i] = d
			return nil
		})
	}
	_ = g.Wait()

	guides := make([]repair.Guide, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		guides = append(guides, toGuide(d))
	}
	return guides
}

func toGuide(d *ifixit.GuideDetails) repair.Guide {
	steps := make([]repair.Step, 0, len(d.Steps))
	for _, st := range d.Steps {
		images := st.Images
		if images == nil {
			images = []string{}
		}
		steps = append(steps, repair.Step{Text: st.Text, Images: images})
	}
	return repair.Guide{Title: d.Title, Steps: steps}
}
