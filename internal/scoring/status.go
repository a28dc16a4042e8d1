package scoring

import "fmt"

// StatusKind classifies the headline shown above the scoreboard.
type StatusKind string

const (
	StatusPlaying        StatusKind = "playing"
	StatusGamePoint      StatusKind = "game_point"
	StatusGamePointBoth  StatusKind = "game_point_both"
	StatusMatchPoint     StatusKind = "match_point"
	StatusMatchPointBoth StatusKind = "match_point_both"
	StatusDeuce          StatusKind = "deuce"
	StatusGameOver       StatusKind = "game_over"
	StatusMatchOver      StatusKind = "match_over"
)

// Status is the derived, read-only view of where a match stands.
type Status struct {
	Kind StatusKind `json:"kind"`
	// Side is the side the status refers to, empty for playing, deuce and the
	// "both" kinds.
	Side        Side `json:"side,omitempty"`
	GamePointA  bool `json:"game_point_a"`
	GamePointB  bool `json:"game_point_b"`
	MatchPointA bool `json:"match_point_a"`
	MatchPointB bool `json:"match_point_b"`
}

// Evaluate derives the status of s under settings.
func Evaluate(s MatchState, settings MatchSettings) Status {
	a, b := s.Game.A, s.Game.B
	need := GamesNeeded(settings.BestOf)

	var st Status
	if !s.Game.Over {
		st.GamePointA = WinsIfScores(a, b, SideA, settings.PointsToWin, settings.Cap)
		st.GamePointB = WinsIfScores(a, b, SideB, settings.PointsToWin, settings.Cap)
	}
	st.MatchPointA = st.GamePointA && s.GamesWonA == need-1
	st.MatchPointB = st.GamePointB && s.GamesWonB == need-1

	switch {
	case s.MatchOver:
		st.Kind, st.Side = StatusMatchOver, s.MatchWinner
	case s.Game.Over:
		st.Kind, st.Side = StatusGameOver, s.Game.Winner
	case IsDeuce(a, b, settings.PointsToWin, settings.Cap):
		st.Kind = StatusDeuce
	case st.MatchPointA && st.MatchPointB:
		st.Kind = StatusMatchPointBoth
	case st.MatchPointA:
		st.Kind, st.Side = StatusMatchPoint, SideA
	case st.MatchPointB:
		st.Kind, st.Side = StatusMatchPoint, SideB
	case st.GamePointA && st.GamePointB:
		st.Kind = StatusGamePointBoth
	case st.GamePointA:
		st.Kind, st.Side = StatusGamePoint, SideA
	case st.GamePointB:
		st.Kind, st.Side = StatusGamePoint, SideB
	default:
		st.Kind = StatusPlaying
	}
	return st
}

func (st Status) String() string {
	switch st.Kind {
	case StatusMatchOver:
		return fmt.Sprintf("Match over: %s wins", st.Side)
	case StatusGameOver:
		return fmt.Sprintf("Game over: %s wins this game", st.Side)
	case StatusDeuce:
		return "Deuce"
	case StatusMatchPointBoth:
		return "Match point: both sides"
	case StatusMatchPoint:
		return fmt.Sprintf("Match point: %s", st.Side)
	case StatusGamePointBoth:
		return "Game point: both sides"
	case StatusGamePoint:
		return fmt.Sprintf("Game point: %s", st.Side)
	default:
		return "Playing"
	}
}

// Controls tells a UI which actions would currently be applied.
type Controls struct {
	Score     bool `json:"score"`
	NextGame  bool `json:"next_game"`
	Undo      bool `json:"undo"`
	SwapServe bool `json:"swap_serve"`
	SwapSides bool `json:"swap_sides"`
}

// ControlsFor derives the enabled controls. SwapServe is always applied by
// the engine; it is only offered while the match is running.
func ControlsFor(s MatchState, mode Mode, historyDepth int) Controls {
	return Controls{
		Score:     s.Phase() == PhasePlaying,
		NextGame:  s.Game.Over && !s.MatchOver,
		Undo:      historyDepth > 0,
		SwapServe: !s.MatchOver,
		SwapSides: mode == Doubles,
	}
}
