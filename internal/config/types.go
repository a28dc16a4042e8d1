package config

import (
	"time"

	"github.com/mauv0809/shuttle-score/internal/settings"
)

// Config holds all configuration for the application.
type Config struct {
	Port     string
	LogLevel string
	Sessions SessionConfig
	Defaults settings.Defaults
	Slack    SlackConfig
	PubSub   PubSubConfig
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type PubSubConfig struct {
	ProjectID string
	Topic     string
}
