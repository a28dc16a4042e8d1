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

// NewServer wires the routes. pubsub may be nil, which leaves the push
// endpoint unregistered.
func NewServer(store session.Store, resolver *settings.Resolver, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Resolver:       resolver,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /matches", Chain(s.CreateMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches/{id}", Chain(s.GetMatchHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /matches/{id}", Chain(s.DeleteMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/point", Chain(s.ActionHandler(session.ActionPoint), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/next-game", Chain(s.ActionHandler(session.ActionNextGame), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/reset", Chain(s.ActionHandler(session.ActionReset), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/swap-serve", Chain(s.ActionHandler(session.ActionSwapServe), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/swap-sides", Chain(s.ActionHandler(session.ActionSwapSides), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/undo", Chain(s.ActionHandler(session.ActionUndo), paramsMiddleware))

	if s.pubsub != nil {
		s.Router.Handle("POST /pubsub/match-finished", Chain(s.MatchFinishedPushHandler(), paramsMiddleware))
	}
	if s.Cfg.Slack.SigningSecret != "" {
		s.Router.Handle("POST /slack/command/score", Chain(s.ScoreCommandHandler(), paramsMiddleware, slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
