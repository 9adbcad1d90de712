package strategy

import "strings"

// NormalizeQuery trims, lower-cases and collapses internal whitespace.
func NormalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// CacheKey builds "<strategy>:<normalizedQuery>".
func CacheKey(strategy, normalizedQuery string) string {
	return strategy + ":" + normalizedQuery
}
