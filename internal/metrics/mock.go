package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	actionsApplied   map[string]int
	actionsRejected  map[string]int
	matchesCompleted int
	matchDurations   []float64
	activeSessions   int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		actionsApplied:  make(map[string]int),
		actionsRejected: make(map[string]int),
		matchDurations:  make([]float64, 0),
	}
}

func (m *Mock) IncActionApplied(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionsApplied[action]++
}

func (m *Mock) IncActionRejected(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionsRejected[action]++
}

func (m *Mock) IncMatchesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesCompleted++
}

func (m *Mock) ObserveMatchDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchDurations = append(m.matchDurations, seconds)
}

func (m *Mock) SetActiveSessions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSessions = n
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ActionsApplied returns how often IncActionApplied was called for action.
func (m *Mock) ActionsApplied(action string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.actionsApplied[action]
}

// ActionsRejected returns how often IncActionRejected was called for action.
func (m *Mock) ActionsRejected(action string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.actionsRejected[action]
}

func (m *Mock) MatchesCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesCompleted
}

// MatchDurations returns a copy of every observed duration.
func (m *Mock) MatchDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.matchDurations...)
}

// ActiveSessions returns the last value passed to SetActiveSessions.
func (m *Mock) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSessions
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
