package settings

import "github.com/mauv0809/shuttle-score/internal/scoring"

// Query keys understood by Resolve.
const (
	KeyBestOf      = "bestOf"
	KeyPointsToWin = "pointsToWin"
	KeyMode        = "mode"
	KeyALeft       = "aL"
	KeyARight      = "aR"
	KeyBLeft       = "bL"
	KeyBRight      = "bR"
	KeySinglesA    = "a"
	KeySinglesB    = "b"
)

// Defaults are the values substituted for missing or invalid input.
type Defaults struct {
	BestOf      scoring.BestOf
	PointsToWin scoring.PointsToWin
	Mode        scoring.Mode
}

// Resolved is everything needed to start a match.
type Resolved struct {
	Settings  scoring.MatchSettings
	Mode      scoring.Mode
	Formation scoring.Formation
}
