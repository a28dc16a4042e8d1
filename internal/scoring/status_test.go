package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		state    func() MatchState
		settings MatchSettings
		want     StatusKind
		side     Side
		message  string
	}{
		{
			name:     "fresh match",
			state:    func() MatchState { return NewMatch(testFormation) },
			settings: bestOfThree21,
			want:     StatusPlaying,
			message:  "Playing",
		},
		{
			name: "game point",
			state: func() MatchState {
				s := NewMatch(testFormation)
				s.Game = GameState{A: 20, B: 15}
				return s
			},
			settings: bestOfThree21,
			want:     StatusGamePoint,
			side:     SideA,
			message:  "Game point: A",
		},
		{
			name: "match point after winning a game",
			state: func() MatchState {
				s := NewMatch(testFormation)
				s.GamesWonB = 1
				s.GameIndex = 1
				s.Game = GameState{A: 3, B: 20}
				return s
			},
			settings: bestOfThree21,
			want:     StatusMatchPoint,
			side:     SideB,
			message:  "Match point: B",
		},
		{
			name: "best of one game point is match point",
			state: func() MatchState {
				s := NewMatch(testFormation)
				s.Game = GameState{A: 14, B: 2}
				return s
			},
			settings: bestOfOne15,
			want:     StatusMatchPoint,
			side:     SideA,
			message:  "Match point: A",
		},
		{
			name: "deuce outranks game point",
			state: func() MatchState {
				s := NewMatch(testFormation)
				s.Game = GameState{A: 20, B: 20}
				return s
			},
			settings: bestOfThree21,
			want:     StatusDeuce,
			message:  "Deuce",
		},
		{
			name: "game over",
			state: func() MatchState {
				s := NewMatch(testFormation)
				s.Game = GameState{A: 21, B: 10, Over: true, Winner: SideA}
				s.GamesWonA = 1
				return s
			},
			settings: bestOfThree21,
			want:     StatusGameOver,
			side:     SideA,
			message:  "Game over: A wins this game",
		},
		{
			name: "match over",
			state: func() MatchState {
				s := NewMatch(testFormation)
				s.Game = GameState{A: 4, B: 15, Over: true, Winner: SideB}
				s.GamesWonB = 1
				s.MatchOver = true
				s.MatchWinner = SideB
				return s
			},
			settings: bestOfOne15,
			want:     StatusMatchOver,
			side:     SideB,
			message:  "Match over: B wins",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Evaluate(tt.state(), tt.settings)
			assert.Equal(t, tt.want, st.Kind)
			assert.Equal(t, tt.side, st.Side)
			assert.Equal(t, tt.message, st.String())
		})
	}
}

func TestEvaluate_FlagsAtDeuce(t *testing.T) {
	s := NewMatch(testFormation)
	s.Game = GameState{A: 29, B: 29}
	s.GamesWonA = 1

	st := Evaluate(s, bestOfThree21)
	assert.Equal(t, StatusDeuce, st.Kind)
	assert.True(t, st.GamePointA)
	assert.True(t, st.GamePointB)
	assert.True(t, st.MatchPointA)
	assert.False(t, st.MatchPointB)
}

func TestControlsFor(t *testing.T) {
	s := NewMatch(testFormation)
	assert.Equal(t, Controls{Score: true, SwapServe: true, SwapSides: true}, ControlsFor(s, Doubles, 0))
	assert.Equal(t, Controls{Score: true, Undo: true, SwapServe: true}, ControlsFor(s, Singles, 2))

	s = playGame(t, s, bestOfThree21, Singles, SideA)
	assert.Equal(t, Controls{NextGame: true, Undo: true, SwapServe: true}, ControlsFor(s, Singles, 21))

	s, _ = NextGame(s)
	s = playGame(t, s, bestOfThree21, Singles, SideA)
	assert.Equal(t, Controls{Undo: true}, ControlsFor(s, Singles, 42))
}
