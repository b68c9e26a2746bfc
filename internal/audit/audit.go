// Package audit records session lifecycle events on the pub/sub bus and logs
// them from a background subscriber.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldbase/admin/internal/pubsub"
)

// Session lifecycle topics.
const (
	TopicLogin       = "session.login"
	TopicLogout      = "session.logout"
	TopicInvalidated = "session.invalidated"
)

// Topics lists every topic the logger subscribes to.
var Topics = []string{TopicLogin, TopicLogout, TopicInvalidated}

type clientKey struct{}

// WithClient returns a context carrying the browser client id.
func WithClient(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientKey{}, clientID)
}

// ClientFrom returns the client id stored by WithClient.
func ClientFrom(ctx context.Context) string {
	id, _ := ctx.Value(clientKey{}).(string)
	return id
}

// Event is the payload of every session message.
type Event struct {
	Topic    string    `json:"topic"`
	ClientID string    `json:"client_id,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	At       time.Time `json:"at"`
}

// Recorder publishes session events.
type Recorder struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewRecorder creates a Recorder. A nil publisher yields a Recorder that drops events.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub, now: time.Now}
}

// Record publishes an event for topic. Failures are logged, never returned:
// auditing must not break the user flow.
func (r *Recorder) Record(ctx context.Context, topic, reason string) {
	if r == nil || r.pub == nil {
		return
	}
	ev := Event{Topic: topic, ClientID: ClientFrom(ctx), Reason: reason, At: r.now().UTC()}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to encode audit event", "topic", topic, "error", err)
		return
	}
	msg := pubsub.Message{Topic: topic, ClientID: ev.ClientID, Payload: payload}
	if err := r.pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish audit event", "topic", topic, "error", err)
	}
}

// Subscribe attaches a logging handler to every session topic.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for _, topic := range Topics {
		if err := sub.Subscribe(ctx, topic, logHandler(logger)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	return nil
}

func logHandler(logger *slog.Logger) pubsub.Handler {
	return func(ctx context.Context, msg pubsub.Message) error {
		var ev Event
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return fmt.Errorf("failed to decode audit event: %w", err)
		}
		logger.Info("Session event", "topic", ev.Topic, "client_id", ev.ClientID, "reason", ev.Reason, "at", ev.At)
		return nil
	}
}
