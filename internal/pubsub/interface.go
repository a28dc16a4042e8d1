package pubsub

import "context"

// PubSubClient publishes events and decodes the payloads of pushed ones.
type PubSubClient interface {
	SendMessage(ctx context.Context, topic string, data any) error
	ProcessMessage(data []byte, returnValue any) error
	Close() error
}
