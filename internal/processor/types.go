package processor

import (
	"github.com/mauv0809/shuttle-score/internal/metrics"
	"github.com/mauv0809/shuttle-score/internal/pubsub"
)

// Processor handles what happens once a match is decided.
type Processor struct {
	pubsub   pubsub.PubSubClient
	topic    string
	notifier Notifier
	metrics  metrics.Metrics
}
