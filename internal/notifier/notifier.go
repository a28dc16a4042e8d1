package notifier

import (
	"context"

	"github.com/mauv0809/shuttle-score/internal/session"
)

// Notifier defines a high-level interface for announcing match events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For finished matches
	SendResultNotification(ctx context.Context, result session.Result, dryRun bool) error

	// For formatting responses for slash commands
	FormatScoreResponse(view session.View) (any, error)
	FormatMatchNotFoundResponse(query string) (any, error)
}
