package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/shuttle-score/internal/config"
	server "github.com/mauv0809/shuttle-score/internal/http"
	"github.com/mauv0809/shuttle-score/internal/metrics"
	"github.com/mauv0809/shuttle-score/internal/notifier/slack"
	"github.com/mauv0809/shuttle-score/internal/processor"
	"github.com/mauv0809/shuttle-score/internal/pubsub"
	"github.com/mauv0809/shuttle-score/internal/session"
	"github.com/mauv0809/shuttle-score/internal/settings"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	log.SetLevel(config.ParseLevel(cfg.LogLevel))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	// Without a project the results are announced directly.
	var publisher pubsub.PubSubClient
	if cfg.PubSub.ProjectID != "" {
		client, err := pubsub.New(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer func() {
			log.Info("Closing pubsub client")
			if err := client.Close(); err != nil {
				log.Error("Failed to close pubsub client", "error", err)
			}
		}()
		publisher = client
	} else {
		log.Warn("GCP_PROJECT not set, match results are announced without pubsub")
	}
	processor := processor.New(notifier, metricsSvc, publisher, cfg.PubSub.Topic)

	resolver := settings.NewResolver(cfg.Defaults)
	store := session.NewMemoryStore(metricsSvc)
	go session.RunSweeper(ctx, store, cfg.Sessions.SweepInterval, cfg.Sessions.TTL)

	s := server.NewServer(
		store,
		resolver,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
		processor,
		publisher,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	stop()
	log.Info("Server process shutting down", "open_matches", store.Len())
}
