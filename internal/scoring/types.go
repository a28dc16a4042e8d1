package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSide is returned when a side identifier is neither A nor B.
var ErrInvalidSide = errors.New("invalid side")

// Side identifies a team.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// ParseSide accepts "A"/"B" in any case, surrounding whitespace ignored.
func ParseSide(raw string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(SideA):
		return SideA, nil
	case string(SideB):
		return SideB, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, raw)
}

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Court is a physical service position.
type Court string

const (
	CourtLeft  Court = "L"
	CourtRight Court = "R"
)

// Mode determines whether doubles rotation applies.
type Mode string

const (
	Singles Mode = "singles"
	Doubles Mode = "doubles"
)

// Pair holds the player names of one side. In singles only Left is used.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Formation holds both sides' pairs.
type Formation struct {
	A Pair `json:"a"`
	B Pair `json:"b"`
}

func (f Formation) pair(side Side) Pair {
	if side == SideA {
		return f.A
	}
	return f.B
}

func (f *Formation) setPair(side Side, p Pair) {
	if side == SideA {
		f.A = p
		return
	}
	f.B = p
}

type BestOf int

type PointsToWin int

const (
	BestOfOne   BestOf = 1
	BestOfThree BestOf = 3

	FifteenPoints   PointsToWin = 15
	TwentyOnePoints PointsToWin = 21
)

const (
	capFifteenPoints = 21
	capTwentyOne     = 30
)

// MatchSettings is the validated rule set of a match. Cap is always derived
// from PointsToWin; build values through NewSettings.
type MatchSettings struct {
	BestOf      BestOf      `json:"best_of"`
	PointsToWin PointsToWin `json:"points_to_win"`
	Cap         int         `json:"cap"`
}

// NewSettings derives the cap for the given rules: 30 for 21-point games,
// 21 for 15-point games.
func NewSettings(bestOf BestOf, pointsToWin PointsToWin) MatchSettings {
	return MatchSettings{
		BestOf:      bestOf,
		PointsToWin: pointsToWin,
		Cap:         CapFor(pointsToWin),
	}
}

func CapFor(pointsToWin PointsToWin) int {
	if pointsToWin == TwentyOnePoints {
		return capTwentyOne
	}
	return capFifteenPoints
}

// GamesNeeded is the number of games a side must win to take the match.
func GamesNeeded(bestOf BestOf) int {
	return int(bestOf)/2 + 1
}

// GameState is the score of the game in progress. Winner is set iff Over.
type GameState struct {
	A      int  `json:"a"`
	B      int  `json:"b"`
	Over   bool `json:"over"`
	Winner Side `json:"winner,omitempty"`
}

func (g GameState) score(side Side) int {
	if side == SideA {
		return g.A
	}
	return g.B
}

// Phase is derived from the game and match flags, never stored.
type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseGameOver  Phase = "game_over"
	PhaseMatchOver Phase = "match_over"
)

// MatchState is the root scoring entity. It contains only value fields, so a
// plain assignment is an independent deep copy.
type MatchState struct {
	GameIndex   int       `json:"game_index"`
	GamesWonA   int       `json:"games_won_a"`
	GamesWonB   int       `json:"games_won_b"`
	Game        GameState `json:"game"`
	MatchOver   bool      `json:"match_over"`
	MatchWinner Side      `json:"match_winner,omitempty"`
	Server      Side      `json:"server"`
	ServerCourt Court     `json:"server_court"`
	Formation   Formation `json:"formation"`
	// FinishedGames holds the final score of each completed game by index.
	FinishedGames [BestOfThree]GameState `json:"finished_games"`
}

func (s MatchState) Phase() Phase {
	switch {
	case s.MatchOver:
		return PhaseMatchOver
	case s.Game.Over:
		return PhaseGameOver
	default:
		return PhasePlaying
	}
}

func (s MatchState) gamesWon(side Side) int {
	if side == SideA {
		return s.GamesWonA
	}
	return s.GamesWonB
}

// Clone returns an independent copy of the state.
func (s MatchState) Clone() MatchState {
	return s
}
