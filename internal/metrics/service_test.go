package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestService_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncActionApplied("point")
	s.IncActionApplied("point")
	s.IncActionRejected("next_game")
	s.IncMatchesCompleted()
	s.ObserveMatchDuration(1500)
	s.SetActiveSessions(4)
	s.IncSlackNotifFailed()
	s.SetStartupTime(0.25)

	body := scrape(t, reg)
	assert.Contains(t, body, `shuttle_actions_applied_total{action="point"} 2`)
	assert.Contains(t, body, `shuttle_actions_rejected_total{action="next_game"} 1`)
	assert.Contains(t, body, "shuttle_matches_completed_total 1")
	assert.Contains(t, body, "shuttle_match_duration_seconds_count 1")
	assert.Contains(t, body, "shuttle_active_sessions 4")
	assert.Contains(t, body, "shuttle_slack_notifications_failed_total 1")
	assert.Contains(t, body, "shuttle_slack_notifications_sent_total 0")
	assert.Contains(t, body, "shuttle_startup_duration_seconds 0.25")
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.IncActionApplied("undo")
	m.IncActionRejected("undo")
	m.IncActionRejected("undo")
	m.SetActiveSessions(2)
	m.SetActiveSessions(1)
	m.ObserveMatchDuration(12)

	assert.Equal(t, 1, m.ActionsApplied("undo"))
	assert.Equal(t, 2, m.ActionsRejected("undo"))
	assert.Equal(t, 0, m.ActionsApplied("point"))
	assert.Equal(t, 1, m.ActiveSessions())
	assert.Equal(t, []float64{12}, m.MatchDurations())
}
