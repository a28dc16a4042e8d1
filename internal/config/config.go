package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/shuttle-score/internal/pubsub"
	"github.com/mauv0809/shuttle-score/internal/scoring"
	"github.com/mauv0809/shuttle-score/internal/settings"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the configuration from lookup. Every variable is
// optional; malformed values fall back to their default with a warning.
func FromLookup(lookup func(string) (string, bool)) Config {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getDuration := func(key string, fallback time.Duration) time.Duration {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Warn("Invalid duration, using default", "key", key, "value", raw, "default", fallback)
			return fallback
		}
		return d
	}
	getInt := func(key string, fallback int) int {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("Invalid integer, using default", "key", key, "value", raw, "default", fallback)
			return fallback
		}
		return n
	}

	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Sessions: SessionConfig{
			TTL:           getDuration("SESSION_TTL", 6*time.Hour),
			SweepInterval: getDuration("SWEEP_INTERVAL", time.Minute),
		},
		// Out of range defaults are corrected by settings.NewResolver.
		Defaults: settings.Defaults{
			BestOf:      scoring.BestOf(getInt("DEFAULT_BEST_OF", int(scoring.BestOfThree))),
			PointsToWin: scoring.PointsToWin(getInt("DEFAULT_POINTS_TO_WIN", int(scoring.TwentyOnePoints))),
			Mode:        scoring.Mode(getEnv("DEFAULT_MODE", string(scoring.Doubles))),
		},
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		},
		PubSub: PubSubConfig{
			ProjectID: getEnv("GCP_PROJECT", ""),
			Topic:     getEnv("PUBSUB_TOPIC", pubsub.DefaultTopic),
		},
	}
}

// ParseLevel maps LOG_LEVEL onto a logger level, defaulting to info.
func ParseLevel(raw string) log.Level {
	level, err := log.ParseLevel(raw)
	if err != nil {
		log.Warn("Unknown LOG_LEVEL, using info", "value", raw)
		return log.InfoLevel
	}
	return level
}
