package processor

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/shuttle-score/internal/metrics"
	"github.com/mauv0809/shuttle-score/internal/pubsub"
	"github.com/mauv0809/shuttle-score/internal/session"
)

// New creates a new Processor. pubsub may be nil, in which case results are
// announced directly.
func New(notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, topic string) *Processor {
	return &Processor{
		pubsub:   pubsub,
		topic:    topic,
		notifier: notifier,
		metrics:  metrics,
	}
}

// MatchFinished records a decided match and gets it announced. When a
// publisher is configured the result goes out as a match-finished event and
// the push subscription announces it; otherwise, or if publishing fails, it
// is announced right away. Failures are logged, never returned.
func (p *Processor) MatchFinished(ctx context.Context, result session.Result, dryRun bool) {
	log.Info("Match finished", "session", result.SessionID, "winner", result.Winner, "games_a", result.GamesWonA, "games_b", result.GamesWonB)
	p.metrics.IncMatchesCompleted()
	p.metrics.ObserveMatchDuration(result.DurationSeconds)

	if p.pubsub != nil {
		if dryRun {
			log.Info("[Dry Run] Would have published match result", "topic", p.topic, "session", result.SessionID)
		} else if err := p.pubsub.SendMessage(ctx, p.topic, result); err != nil {
			log.Warn("Publishing match result failed, announcing directly", "error", err, "session", result.SessionID)
		} else {
			return
		}
	}

	if err := p.Announce(ctx, result, dryRun); err != nil {
		log.Error("Failed to announce match result", "error", err, "session", result.SessionID)
	}
}

// Announce sends the result notification.
func (p *Processor) Announce(ctx context.Context, result session.Result, dryRun bool) error {
	log.Debug("Announcing match result", "session", result.SessionID, "dry_run", dryRun)
	return p.notifier.SendResultNotification(ctx, result, dryRun)
}
