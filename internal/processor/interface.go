package processor

import (
	"context"

	"github.com/mauv0809/shuttle-score/internal/session"
)

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	SendResultNotification(ctx context.Context, result session.Result, dryRun bool) error
}
