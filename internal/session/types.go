package session

import (
	"errors"
	"time"

	"github.com/mauv0809/shuttle-score/internal/scoring"
)

var (
	ErrNotFound      = errors.New("session not found")
	ErrUnknownAction = errors.New("unknown action")
)

// Action names one of the operations a session accepts.
type Action string

const (
	ActionPoint     Action = "point"
	ActionNextGame  Action = "next_game"
	ActionReset     Action = "reset"
	ActionSwapServe Action = "swap_serve"
	ActionSwapSides Action = "swap_sides"
	ActionUndo      Action = "undo"
)

// Command is a single user action. Side is only read by ActionPoint and
// ActionSwapSides.
type Command struct {
	Action Action
	Side   scoring.Side
}

// Outcome describes what Apply did.
type Outcome struct {
	Applied bool
	State   scoring.MatchState
	// MatchEnded is true only for the action that moved the match into
	// match over.
	MatchEnded   bool
	HistoryDepth int
	// Result is the finished match summary, set only when MatchEnded.
	Result Result
	// View is read under the same lock as the action.
	View View
}

// View is a consistent read of a session.
type View struct {
	ID           string                `json:"id"`
	Mode         scoring.Mode          `json:"mode"`
	Settings     scoring.MatchSettings `json:"settings"`
	State        scoring.MatchState    `json:"state"`
	Status       scoring.Status        `json:"status"`
	StatusText   string                `json:"status_text"`
	Controls     scoring.Controls      `json:"controls"`
	HistoryDepth int                   `json:"history_depth"`
	CreatedAt    time.Time             `json:"created_at"`
	LastActive   time.Time             `json:"last_active"`
}

// Result summarises a finished match. It is the payload of the
// match-finished event, so it carries msgpack tags.
type Result struct {
	SessionID       string              `msgpack:"session_id" json:"session_id"`
	Mode            scoring.Mode        `msgpack:"mode" json:"mode"`
	BestOf          int                 `msgpack:"best_of" json:"best_of"`
	PointsToWin     int                 `msgpack:"points_to_win" json:"points_to_win"`
	Winner          scoring.Side        `msgpack:"winner" json:"winner"`
	GamesWonA       int                 `msgpack:"games_won_a" json:"games_won_a"`
	GamesWonB       int                 `msgpack:"games_won_b" json:"games_won_b"`
	FinalGame       scoring.GameState   `msgpack:"final_game" json:"final_game"`
	Games           []scoring.GameState `msgpack:"games" json:"games"`
	Formation       scoring.Formation   `msgpack:"formation" json:"formation"`
	StartedAt       time.Time           `msgpack:"started_at" json:"started_at"`
	FinishedAt      time.Time           `msgpack:"finished_at" json:"finished_at"`
	DurationSeconds float64             `msgpack:"duration_seconds" json:"duration_seconds"`
}

// Store keeps the active sessions of the process.
type Store interface {
	Create(settings scoring.MatchSettings, mode scoring.Mode, formation scoring.Formation) *Session
	Get(id string) (*Session, error)
	Delete(id string) error
	Len() int
	// Sweep removes sessions idle for longer than maxIdle and returns how many
	// were removed.
	Sweep(maxIdle time.Duration) int
}
