package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJudgeGame(t *testing.T) {
	tests := []struct {
		name        string
		a, b        int
		pointsToWin PointsToWin
		ceiling     int
		wantOver    bool
		wantWinner  Side
	}{
		{name: "start of game", a: 0, b: 0, pointsToWin: 21, ceiling: 30},
		{name: "plain win", a: 21, b: 19, pointsToWin: 21, ceiling: 30, wantOver: true, wantWinner: SideA},
		{name: "plain win for B", a: 10, b: 21, pointsToWin: 21, ceiling: 30, wantOver: true, wantWinner: SideB},
		{name: "one point margin is not enough", a: 21, b: 20, pointsToWin: 21, ceiling: 30},
		{name: "two clear after deuce", a: 22, b: 20, pointsToWin: 21, ceiling: 30, wantOver: true, wantWinner: SideA},
		{name: "tied below cap", a: 29, b: 29, pointsToWin: 21, ceiling: 30},
		{name: "cap ends game with one point margin", a: 30, b: 29, pointsToWin: 21, ceiling: 30, wantOver: true, wantWinner: SideA},
		{name: "cap for B", a: 29, b: 30, pointsToWin: 21, ceiling: 30, wantOver: true, wantWinner: SideB},
		{name: "fifteen point win", a: 15, b: 13, pointsToWin: 15, ceiling: 21, wantOver: true, wantWinner: SideA},
		{name: "fifteen point deuce", a: 15, b: 14, pointsToWin: 15, ceiling: 21},
		{name: "fifteen point cap", a: 20, b: 21, pointsToWin: 15, ceiling: 21, wantOver: true, wantWinner: SideB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, winner := JudgeGame(tt.a, tt.b, tt.pointsToWin, tt.ceiling)
			assert.Equal(t, tt.wantOver, over)
			assert.Equal(t, tt.wantWinner, winner)
		})
	}
}

func TestWinsIfScores(t *testing.T) {
	assert.True(t, WinsIfScores(20, 19, SideA, 21, 30), "21-19 ends the game")
	assert.False(t, WinsIfScores(20, 19, SideB, 21, 30), "20-20 does not")
	assert.False(t, WinsIfScores(20, 20, SideA, 21, 30), "21-20 is not a win")
	assert.True(t, WinsIfScores(21, 20, SideA, 21, 30))
	assert.True(t, WinsIfScores(29, 29, SideA, 21, 30), "the cap decides")
	assert.True(t, WinsIfScores(29, 29, SideB, 21, 30), "the cap decides")
	assert.True(t, WinsIfScores(14, 3, SideA, 15, 21))
	assert.False(t, WinsIfScores(0, 0, SideA, 21, 30))
}

func TestIsDeuce(t *testing.T) {
	tests := []struct {
		name        string
		a, b        int
		pointsToWin PointsToWin
		ceiling     int
		want        bool
	}{
		{name: "20 all", a: 20, b: 20, pointsToWin: 21, ceiling: 30, want: true},
		{name: "19 all", a: 19, b: 19, pointsToWin: 21, ceiling: 30, want: false},
		{name: "29 all", a: 29, b: 29, pointsToWin: 21, ceiling: 30, want: true},
		{name: "at cap", a: 30, b: 30, pointsToWin: 21, ceiling: 30, want: false},
		{name: "not tied", a: 21, b: 20, pointsToWin: 21, ceiling: 30, want: false},
		{name: "14 all in fifteen point game", a: 14, b: 14, pointsToWin: 15, ceiling: 21, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDeuce(tt.a, tt.b, tt.pointsToWin, tt.ceiling))
		})
	}
}

func TestSettings(t *testing.T) {
	assert.Equal(t, MatchSettings{BestOf: 3, PointsToWin: 21, Cap: 30}, NewSettings(BestOfThree, TwentyOnePoints))
	assert.Equal(t, MatchSettings{BestOf: 1, PointsToWin: 15, Cap: 21}, NewSettings(BestOfOne, FifteenPoints))
	assert.Equal(t, 1, GamesNeeded(BestOfOne))
	assert.Equal(t, 2, GamesNeeded(BestOfThree))
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide(" b ")
	assert.NoError(t, err)
	assert.Equal(t, SideB, side)

	_, err = ParseSide("C")
	assert.ErrorIs(t, err, ErrInvalidSide)

	assert.Equal(t, SideB, SideA.Opponent())
	assert.Equal(t, SideA, SideB.Opponent())
}
