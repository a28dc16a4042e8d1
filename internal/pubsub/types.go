package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// DefaultTopic carries one message per finished match.
const DefaultTopic = "match-finished"

// PushEnvelope is the JSON body of a Pub/Sub push subscription request.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID   string `json:"messageId"`
		Data string `json:"data"` // base64 encoded msgpack payload
	} `json:"message"`
}
