package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	modelCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bigod_model_calls_total",
			Help: "Total number of outbound model API calls",
		},
		[]string{"status"},
	)

	modelCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bigod_model_call_duration_seconds",
			Help:    "Model API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
