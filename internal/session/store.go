package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/shuttle-score/internal/metrics"
	"github.com/mauv0809/shuttle-score/internal/scoring"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps sessions in a map for the life of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	metrics  metrics.Metrics
	now      func() time.Time
}

func NewMemoryStore(metrics metrics.Metrics) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		metrics:  metrics,
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(settings scoring.MatchSettings, mode scoring.Mode, formation scoring.Formation) *Session {
	s := newSession(settings, mode, formation, m.now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SetActiveSessions(n)
	log.Info("Session created", "session", s.ID, "mode", mode, "best_of", settings.BestOf, "points_to_win", settings.PointsToWin)
	return s
}

func (m *MemoryStore) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return s, nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	if _, ok := m.sessions[id]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SetActiveSessions(n)
	log.Info("Session deleted", "session", id)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) Sweep(maxIdle time.Duration) int {
	now := m.now()

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if idle := s.idleSince(now); idle > maxIdle {
			log.Debug("Sweeping idle session", "session", id, "idle", idle)
			delete(m.sessions, id)
			removed++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		m.metrics.SetActiveSessions(n)
		log.Info("Swept idle sessions", "removed", removed, "remaining", n)
	}
	return removed
}

// RunSweeper calls store.Sweep every interval until ctx is done.
func RunSweeper(ctx context.Context, store Store, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("Session sweeper started", "interval", interval, "max_idle", maxIdle)
	for {
		select {
		case <-ticker.C:
			store.Sweep(maxIdle)
		case <-ctx.Done():
			log.Info("Session sweeper stopped")
			return
		}
	}
}
