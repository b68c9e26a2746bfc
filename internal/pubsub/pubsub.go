// Package pubsub is the in-process message bus session events travel on.
package pubsub

import (
	"context"
)

// Message is a single event on the bus.
type Message struct {
	// Topic names the event kind, e.g. "session.logout".
	Topic string
	// ClientID is the browser client that caused the event. Empty for system events.
	ClientID string
	Payload  []byte
	Metadata map[string]string
}

// Handler processes one delivered message. A non-nil error nacks it.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Subscriber delivers messages for a topic to a handler until ctx ends or the
// bus is closed. Subscribe returns once the subscription is active.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
}

// Bus is both ends of the message bus.
type Bus interface {
	Publisher
	Subscriber
	Close() error
}
