package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	metaClientID = "client_id"
	metaTopic    = "topic"

	// DefaultBuffer is the per-subscriber channel buffer of the GoChannel.
	DefaultBuffer = 64
)

// WatermillBus is a Bus backed by watermill's in-memory GoChannel.
type WatermillBus struct {
	channel *gochannel.GoChannel
	tracer  trace.Tracer
}

var _ Bus = (*WatermillBus)(nil)

// NewWatermillBus creates an in-memory bus. Publish and handling are traced
// with tracer; a nil tracer disables tracing.
func NewWatermillBus(tracer trace.Tracer) *WatermillBus {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("pubsub")
	}
	return &WatermillBus{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: DefaultBuffer},
			watermill.NewStdLogger(false, false),
		),
		tracer: tracer,
	}
}

func toWatermill(msg Message) *message.Message {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(metaTopic, msg.Topic)
	wm.Metadata.Set(metaClientID, msg.ClientID)
	return wm
}

func fromWatermill(wm *message.Message) Message {
	msg := Message{
		Topic:    wm.Metadata.Get(metaTopic),
		ClientID: wm.Metadata.Get(metaClientID),
		Payload:  wm.Payload,
		Metadata: make(map[string]string),
	}
	for k, v := range wm.Metadata {
		if k != metaTopic && k != metaClientID {
			msg.Metadata[k] = v
		}
	}
	return msg
}

func spanAttributes(operation string, msg Message, id string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", msg.Topic),
		attribute.String("messaging.message_id", id),
		attribute.String("client.id", msg.ClientID),
	)
}

func (b *WatermillBus) Publish(ctx context.Context, msg Message) error {
	wm := toWatermill(msg)
	ctx, span := b.tracer.Start(ctx, "pubsub.publish."+msg.Topic, spanAttributes("publish", msg, wm.UUID))
	defer span.End()

	wm.SetContext(ctx)
	if err := b.channel.Publish(msg.Topic, wm); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (b *WatermillBus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			b.handle(ctx, wm, handler)
		}
		slog.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

func (b *WatermillBus) handle(ctx context.Context, wm *message.Message, handler Handler) {
	msg := fromWatermill(wm)
	ctx, span := b.tracer.Start(ctx, "pubsub.process."+msg.Topic, spanAttributes("process", msg, wm.UUID))
	defer span.End()

	if err := handler(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Failed to handle message", "topic", msg.Topic, "msg_id", wm.UUID, "error", err)
		wm.Nack()
		return
	}
	wm.Ack()
}

// Close stops every subscription.
func (b *WatermillBus) Close() error {
	return b.channel.Close()
}
