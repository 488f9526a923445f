package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ChatRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbchat_chat_requests_total",
			Help: "Total number of chat requests by outcome.",
		},
		[]string{"outcome"},
	)

	GuardDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbchat_guard_decisions_total",
			Help: "Query guard verdicts on model-proposed queries.",
		},
		[]string{"decision"},
	)

	ModelCallDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dbchat_model_call_duration_seconds",
			Help:    "Latency of calls to the upstream language model.",
			Buckets: prometheus.DefBuckets,
		},
	)

	QueryDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dbchat_query_duration_seconds",
			Help:    "Latency of approved queries against the store.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		ChatRequestsTotal,
		GuardDecisionsTotal,
		ModelCallDurationSeconds,
		QueryDurationSeconds,
	)
}
