package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/shuttle-score/internal/session"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendResultNotificationCalls []SendResultNotificationCall
	FormatScoreResponseCalls    []session.View
	FormatMatchNotFoundCalls    []string

	// Spies
	SendResultNotificationFunc func(result session.Result, dryRun bool) error
	FormatScoreResponseFunc    func(view session.View) (any, error)
	FormatMatchNotFoundFunc    func(query string) (any, error)
}

// SendResultNotificationCall holds the arguments for a call to SendResultNotification.
type SendResultNotificationCall struct {
	Result session.Result
	DryRun bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.FormatScoreResponseCalls = nil
	m.FormatMatchNotFoundCalls = nil
}

func (m *Mock) SendResultNotification(ctx context.Context, result session.Result, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, SendResultNotificationCall{Result: result, DryRun: dryRun})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(result, dryRun)
	}
	return nil
}

func (m *Mock) FormatScoreResponse(view session.View) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatScoreResponseCalls = append(m.FormatScoreResponseCalls, view)
	if m.FormatScoreResponseFunc != nil {
		return m.FormatScoreResponseFunc(view)
	}
	return "formatted_score", nil
}

func (m *Mock) FormatMatchNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FormatMatchNotFoundCalls = append(m.FormatMatchNotFoundCalls, query)
	if m.FormatMatchNotFoundFunc != nil {
		return m.FormatMatchNotFoundFunc(query)
	}
	return "formatted_match_not_found", nil
}

// ResultCalls returns a copy of the SendResultNotification call records.
func (m *Mock) ResultCalls() []SendResultNotificationCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SendResultNotificationCall(nil), m.SendResultNotificationCalls...)
}
