package strategy

import (
	"context"
	"time"

	"repair-assistant/internal/repair"
	"repair-assistant/internal/repair/repository"
	"repair-assistant/pkg/ifixit"
	"repair-assistant/pkg/log"
	"repair-assistant/pkg/tavily"
)

// GuideResolver resolves an intent to official repair guides.
// A nil result means no guide; provider failures are never surfaced.
type GuideResolver interface {
	Resolve(ctx context.Context, intent *repair.Intent) *repair.GuideResult
	Refresh(ctx context.Context, intent *repair.Intent) *repair.GuideResult
}

// WebResolver resolves a query with web search.
type WebResolver interface {
	Resolve(ctx context.Context, query string) *repair.WebResult
	Refresh(ctx context.Context, query string) *repair.WebResult
}

// DeviceNormalizer maps free text to an official device name.
type DeviceNormalizer interface {
	NormalizeDevice(ctx context.Context, text string) string
}

// Options configures both strategies.
type Options struct {
	ProviderTimeout time.Duration
	MaxGuides       int
}

// GuideStrategy resolves guides from iFixit.
type GuideStrategy struct {
	provider   ifixit.IIFixit
	normalizer DeviceNormalizer
	maxGuides  int
	resolver   *resolver[repair.GuideResult]
	l          log.Logger
}

var _ GuideResolver = (*GuideStrategy)(nil)

// NewGuide creates a GuideStrategy. normalizer may be nil.
func NewGuide(provider ifixit.IIFixit, normalizer DeviceNormalizer, cache repository.CacheRepository, opt Options, l log.Logger) *GuideStrategy {
	if opt.MaxGuides <= 0 {
		opt.MaxGuides = DefaultMaxGuides
	}
	return &GuideStrategy{
		provider:   provider,
		normalizer: normalizer,
		maxGuides:  opt.MaxGuides,
		resolver:   newResolver(NameGuide, cache, opt.ProviderTimeout, (*repair.GuideResult).Empty, l),
		l:          l,
	}
}

// WebStrategy resolves answers from Tavily.
type WebStrategy struct {
	provider tavily.ISearcher
	resolver *resolver[repair.WebResult]
	l        log.Logger
}

var _ WebResolver = (*WebStrategy)(nil)

// NewWeb creates a WebStrategy.
func NewWeb(provider tavily.ISearcher, cache repository.CacheRepository, opt Options, l log.Logger) *WebStrategy {
	return &WebStrategy{
		provider: provider,
		resolver: newResolver(NameWeb, cache, opt.ProviderTimeout, (*repair.WebResult).Empty, l),
		l:        l,
	}
}
