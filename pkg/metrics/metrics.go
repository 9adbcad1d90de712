package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineStageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repair_pipeline_stage_total",
			Help: "Total number of pipeline stages entered",
		},
		[]string{"stage"},
	)

	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repair_pipeline_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	AnswerSourceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repair_answer_source_total",
			Help: "Final answers by provenance",
		},
		[]string{"source"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repair_cache_lookups_total",
			Help: "Strategy cache lookups by result",
		},
		[]string{"strategy", "result"}, // result: hit|miss|error
	)

	StrategyFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repair_strategy_failures_total",
			Help: "Provider failures, empty results and timeouts per strategy",
		},
		[]string{"strategy", "reason"},
	)

	StreamEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repair_stream_events_total",
			Help: "SSE events written to clients",
		},
		[]string{"type"},
	)

	StreamsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "repair_streams_active",
			Help: "Number of open chat streams",
		},
	)

	TokensUsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "repair_tokens_used_total",
			Help: "Estimated tokens recorded against user usage",
		},
	)
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"

	ReasonError   = "error"
	ReasonEmpty   = "empty"
	ReasonTimeout = "timeout"
)
