package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for interview sessions started
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_sessions_started_total",
			Help: "Total number of interview sessions started",
		},
	)

	// Counter for interview sessions ended, by completion path
	SessionsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_sessions_ended_total",
			Help: "Total number of interview sessions ended",
		},
		[]string{"reason"}, // reason: ended/archived_idle
	)

	// Gauge for sessions currently in the active registry
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interview_active_sessions_current",
			Help: "Current number of active interview sessions",
		},
	)

	// Counter for completion provider attempts
	CompletionAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_completion_attempts_total",
			Help: "Total number of completion provider attempts",
		},
		[]string{"status"}, // status: success/failure
	)

	// Counter for local fallback replies served
	CompletionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_completion_fallbacks_total",
			Help: "Total number of locally generated fallback replies",
		},
	)

	// Histogram for completion round-trip time
	CompletionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interview_completion_duration_seconds",
			Help:    "Time spent obtaining a completion, including retries",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Counter for session recoveries from the backup registry
	SessionsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_sessions_recovered_total",
			Help: "Total number of sessions promoted back from backup",
		},
	)
)
