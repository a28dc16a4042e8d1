package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mauv0809/shuttle-score/internal/scoring"
)

// Session is one match being scored. The match state and its undo history
// are guarded by the same mutex, so every action is atomic with respect to
// both.
type Session struct {
	ID        string
	Settings  scoring.MatchSettings
	Mode      scoring.Mode
	CreatedAt time.Time

	mu         sync.Mutex
	defaults   scoring.Formation
	state      scoring.MatchState
	history    *scoring.History
	// clocks runs parallel to history, so undo restores the match clock
	// together with the state.
	clocks     []matchClock
	clock      matchClock
	lastActive time.Time
	now        func() time.Time
}

type matchClock struct {
	startedAt  time.Time
	finishedAt time.Time
}

// New starts a match with formation as both the opening and the reset
// formation.
func New(settings scoring.MatchSettings, mode scoring.Mode, formation scoring.Formation) *Session {
	return newSession(settings, mode, formation, time.Now)
}

func newSession(settings scoring.MatchSettings, mode scoring.Mode, formation scoring.Formation, now func() time.Time) *Session {
	t := now()
	return &Session{
		ID:         uuid.NewString(),
		Settings:   settings,
		Mode:       mode,
		CreatedAt:  t,
		defaults:   formation,
		state:      scoring.NewMatch(formation),
		history:    scoring.NewHistory(),
		clock:      matchClock{startedAt: t},
		lastActive: t,
		now:        now,
	}
}

// Apply runs cmd against the session. A command whose precondition does not
// hold leaves the session untouched and reports Applied=false. Errors are
// returned only for malformed commands.
func (s *Session) Apply(cmd Command) (Outcome, error) {
	switch cmd.Action {
	case ActionPoint, ActionSwapSides:
		if !cmd.Side.Valid() {
			return Outcome{}, fmt.Errorf("%s: %w: %q", cmd.Action, scoring.ErrInvalidSide, cmd.Side)
		}
	case ActionNextGame, ActionReset, ActionSwapServe, ActionUndo:
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	var (
		next    scoring.MatchState
		applied bool
	)
	switch cmd.Action {
	case ActionPoint:
		next, applied = scoring.RecordPoint(prev, s.Settings, s.Mode, cmd.Side)
	case ActionNextGame:
		next, applied = scoring.NextGame(prev)
	case ActionReset:
		next, applied = scoring.ResetMatch(s.defaults), true
	case ActionSwapServe:
		next, applied = scoring.SwapServe(prev), true
	case ActionSwapSides:
		next, applied = scoring.SwapLeftRight(prev, s.Mode, cmd.Side)
	case ActionUndo:
		next, applied = scoring.Undo(s.history, prev)
	}

	now := s.now()
	s.lastActive = now
	if !applied {
		return Outcome{State: prev, HistoryDepth: s.history.Len(), View: s.view()}, nil
	}

	if cmd.Action == ActionUndo {
		s.clock = s.clocks[len(s.clocks)-1]
		s.clocks = s.clocks[:len(s.clocks)-1]
	} else {
		s.history.Push(prev)
		s.clocks = append(s.clocks, s.clock)
	}
	s.state = next

	if cmd.Action == ActionReset {
		s.clock = matchClock{startedAt: now}
	}
	out := Outcome{
		Applied:      true,
		State:        next,
		MatchEnded:   !prev.MatchOver && next.MatchOver && cmd.Action != ActionUndo,
		HistoryDepth: s.history.Len(),
	}
	if out.MatchEnded {
		s.clock.finishedAt = now
		out.Result, _ = s.result()
	}
	out.View = s.view()
	return out, nil
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// Result returns the summary of a finished match. ok is false while the
// match is still running.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result()
}

func (s *Session) view() View {
	status := scoring.Evaluate(s.state, s.Settings)
	return View{
		ID:           s.ID,
		Mode:         s.Mode,
		Settings:     s.Settings,
		State:        s.state,
		Status:       status,
		StatusText:   status.String(),
		Controls:     scoring.ControlsFor(s.state, s.Mode, s.history.Len()),
		HistoryDepth: s.history.Len(),
		CreatedAt:    s.CreatedAt,
		LastActive:   s.lastActive,
	}
}

func (s *Session) result() (Result, bool) {
	if !s.state.MatchOver {
		return Result{}, false
	}
	finished := s.clock.finishedAt
	if finished.IsZero() {
		finished = s.lastActive
	}
	return Result{
		SessionID:       s.ID,
		Mode:            s.Mode,
		BestOf:          int(s.Settings.BestOf),
		PointsToWin:     int(s.Settings.PointsToWin),
		Winner:          s.state.MatchWinner,
		GamesWonA:       s.state.GamesWonA,
		GamesWonB:       s.state.GamesWonB,
		FinalGame:       s.state.Game,
		Games:           playedGames(s.state),
		Formation:       s.state.Formation,
		StartedAt:       s.clock.startedAt,
		FinishedAt:      finished,
		DurationSeconds: finished.Sub(s.clock.startedAt).Seconds(),
	}, true
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

func playedGames(st scoring.MatchState) []scoring.GameState {
	n := st.GamesWonA + st.GamesWonB
	if n > len(st.FinishedGames) {
		n = len(st.FinishedGames)
	}
	return append([]scoring.GameState(nil), st.FinishedGames[:n]...)
}
