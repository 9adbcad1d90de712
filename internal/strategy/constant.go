package strategy

import "time"

// Strategy names, also used as cache key prefixes.
const (
	NameGuide = "ifixit"
	NameWeb   = "web"
)

// Log prefixes
const (
	LogPrefixResolve = "internal.strategy.Resolve"
	LogPrefixGuide   = "internal.strategy.Guide"
	LogPrefixWeb     = "internal.strategy.Web"
)

// Guide ranking weights
const (
	ScoreComponentMatch = 50
	ScoreTypeMatch      = 30
	ScoreReplacement    = 10
	ScoreStarred        = 20

	replacementKeyword = "replacement"
)

const (
	DefaultMaxGuides       = 3
	DefaultProviderTimeout = 20 * time.Second
	detailFetchConcurrency = 3
)
