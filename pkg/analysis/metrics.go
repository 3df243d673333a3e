package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK              = "ok"
	outcomeValidationError = "validation_error"
	outcomeUnconfigured    = "unconfigured"
	outcomePipelineError   = "pipeline_error"
)

var analyzeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bigod_analyze_requests_total",
		Help: "Total number of analyze requests by terminal outcome",
	},
	[]string{"outcome"},
)
