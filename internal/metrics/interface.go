package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncActionApplied(action string)
	IncActionRejected(action string)
	IncMatchesCompleted()
	ObserveMatchDuration(seconds float64)
	SetActiveSessions(n int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
