// Package eventbus provides an in-process pub/sub bus for domain events,
// built on Watermill's Go-channel transport. It is the default sink for a
// dispatcher drain; applications needing a real broker implement the same
// surface over their transport of choice.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/baotoq/buildingblocks/domain/event"
)

// DefaultTopic is the topic events are published to unless overridden.
const DefaultTopic = "domain.events"

// Bus wraps Watermill pub/sub for domain events.
type Bus struct {
	pubsub *gochannel.GoChannel
	topic  string
	logger watermill.LoggerAdapter
}

// New creates an in-process event bus using Go channels.
func New(logger watermill.LoggerAdapter) *Bus {
	return NewWithTopic(DefaultTopic, logger)
}

// NewWithTopic creates a bus publishing to the given topic.
//
// Publishing blocks until every subscriber acks the message; without that the
// Go-channel transport hands each message to subscribers in its own goroutine
// and the entity's ordered pending-event sequence would arrive shuffled.
func NewWithTopic(topic string, logger watermill.LoggerAdapter) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            100,
			Persistent:                     false,
			BlockPublishUntilSubscriberAck: true,
		},
		logger,
	)

	return &Bus{
		pubsub: pubsub,
		topic:  topic,
		logger: logger,
	}
}

// Publisher returns the underlying Watermill publisher.
func (b *Bus) Publisher() message.Publisher {
	return b.pubsub
}

// Subscriber returns the underlying Watermill subscriber.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Publish publishes a domain event to the bus. It blocks until all current
// subscribers have acked the message, so events are observed in publish
// order; publish and consume from different goroutines.
func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := EventToMessage(e)
	if err != nil {
		return err
	}
	return b.pubsub.Publish(b.topic, msg)
}

// PublishAll publishes multiple domain events in order. Each event blocks
// until subscribers ack it before the next is sent.
func (b *Bus) PublishAll(ctx context.Context, events []event.Event) error {
	for _, e := range events {
		if err := b.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Handler returns an event.Handler that forwards dispatched events to the
// bus, bridging a Dispatcher drain into pub/sub.
func (b *Bus) Handler(ctx context.Context) event.Handler {
	return event.HandlerFunc(func(e event.Event) error {
		return b.Publish(ctx, e)
	})
}

// Close closes the bus and its subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Envelope wraps a domain event for serialization on the bus.
type Envelope struct {
	EventID     string          `json:"event_id"`
	EventName   string          `json:"event_name"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// EventToMessage converts a domain event to a Watermill message carrying an
// Envelope payload.
func EventToMessage(e event.Event) (*message.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	envelope := Envelope{
		EventID:     e.EventID(),
		EventName:   e.EventName(),
		AggregateID: e.AggregateID(),
		OccurredAt:  e.OccurredAt(),
		Payload:     payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(e.EventID(), data)
	msg.Metadata.Set("event_name", e.EventName())
	msg.Metadata.Set("aggregate_id", e.AggregateID())

	return msg, nil
}

// MessageToEnvelope extracts the event envelope from a Watermill message.
func MessageToEnvelope(msg *message.Message) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}
