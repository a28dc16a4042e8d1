package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourtFromPoints(t *testing.T) {
	assert.Equal(t, CourtRight, CourtFromPoints(0))
	assert.Equal(t, CourtLeft, CourtFromPoints(1))
	assert.Equal(t, CourtRight, CourtFromPoints(2))
	assert.Equal(t, CourtLeft, CourtFromPoints(21))
}

func TestNextServeState(t *testing.T) {
	tests := []struct {
		name    string
		current Serve
		scorer  Side
		after   GameState
		want    Serve
	}{
		{
			name:    "server holds serve",
			current: Serve{Server: SideA, Court: CourtRight},
			scorer:  SideA,
			after:   GameState{A: 1, B: 0},
			want:    Serve{Server: SideA, Court: CourtLeft},
		},
		{
			name:    "receiver wins the rally",
			current: Serve{Server: SideA, Court: CourtLeft},
			scorer:  SideB,
			after:   GameState{A: 1, B: 1},
			want:    Serve{Server: SideB, Court: CourtLeft},
		},
		{
			name:    "court follows the new server's score",
			current: Serve{Server: SideA, Court: CourtLeft},
			scorer:  SideB,
			after:   GameState{A: 5, B: 4},
			want:    Serve{Server: SideB, Court: CourtRight},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextServeState(tt.current, tt.scorer, tt.after))
		})
	}
}

func TestRotateServingPair(t *testing.T) {
	f := Formation{
		A: Pair{Left: "A1", Right: "A2"},
		B: Pair{Left: "B1", Right: "B2"},
	}

	rotated := RotateServingPair(f, SideA)
	assert.Equal(t, Pair{Left: "A2", Right: "A1"}, rotated.A)
	assert.Equal(t, f.B, rotated.B, "the other side is untouched")
	assert.Equal(t, Pair{Left: "A1", Right: "A2"}, f.A, "input is not modified")

	assert.Equal(t, f, RotateServingPair(RotateServingPair(f, SideB), SideB))
}
