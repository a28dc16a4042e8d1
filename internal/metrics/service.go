package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ActionsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shuttle_actions_applied_total",
			Help: "The total number of scoring actions that changed a match.",
		}, []string{"action"}),
		ActionsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shuttle_actions_rejected_total",
			Help: "The total number of scoring actions rejected because their precondition did not hold.",
		}, []string{"action"}),
		MatchesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuttle_matches_completed_total",
			Help: "The total number of matches that reached match over.",
		}),
		MatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shuttle_match_duration_seconds",
			Help:    "Wall clock duration from match start to match over.",
			Buckets: []float64{300, 600, 900, 1200, 1800, 2400, 3600, 5400, 7200},
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shuttle_active_sessions",
			Help: "The number of scoring sessions currently held in memory.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuttle_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuttle_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shuttle_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ActionsApplied,
		s.ActionsRejected,
		s.MatchesCompleted,
		s.MatchDuration,
		s.ActiveSessions,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncActionApplied(action string) {
	s.ActionsApplied.WithLabelValues(action).Inc()
}

func (s *Service) IncActionRejected(action string) {
	s.ActionsRejected.WithLabelValues(action).Inc()
}

func (s *Service) IncMatchesCompleted() {
	s.MatchesCompleted.Inc()
}

func (s *Service) ObserveMatchDuration(seconds float64) {
	s.MatchDuration.Observe(seconds)
}

func (s *Service) SetActiveSessions(n int) {
	s.ActiveSessions.Set(float64(n))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
