package http

import (
	"net/http"

	"github.com/mauv0809/shuttle-score/internal/config"
	"github.com/mauv0809/shuttle-score/internal/metrics"
	"github.com/mauv0809/shuttle-score/internal/notifier"
	"github.com/mauv0809/shuttle-score/internal/processor"
	"github.com/mauv0809/shuttle-score/internal/pubsub"
	"github.com/mauv0809/shuttle-score/internal/session"
	"github.com/mauv0809/shuttle-score/internal/settings"
)

type Server struct {
	Store          session.Store
	Resolver       *settings.Resolver
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// actionResponse is the body returned by every scoring action. Applied is
// false when the action was rejected and the match is unchanged.
type actionResponse struct {
	Applied bool `json:"applied"`
	session.View
}
