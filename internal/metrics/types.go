package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	ActionsApplied     *prometheus.CounterVec
	ActionsRejected    *prometheus.CounterVec
	MatchesCompleted   prometheus.Counter
	MatchDuration      prometheus.Histogram
	ActiveSessions     prometheus.Gauge
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
