package eventbus

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baotoq/buildingblocks/domain/event"
)

type accountOpened struct {
	event.Base
	Owner string `json:"owner"`
}

func (e accountOpened) EventName() string {
	return "account.opened"
}

func TestEnvelopeRoundTrip(t *testing.T) {
	e := accountOpened{Base: event.NewBase("acct-1"), Owner: "alice"}

	msg, err := EventToMessage(e)
	require.NoError(t, err)

	assert.Equal(t, e.EventID(), msg.UUID)
	assert.Equal(t, "account.opened", msg.Metadata.Get("event_name"))
	assert.Equal(t, "acct-1", msg.Metadata.Get("aggregate_id"))

	envelope, err := MessageToEnvelope(msg)
	require.NoError(t, err)

	assert.Equal(t, e.EventID(), envelope.EventID)
	assert.Equal(t, "account.opened", envelope.EventName)
	assert.Equal(t, "acct-1", envelope.AggregateID)
	assert.WithinDuration(t, e.OccurredAt(), envelope.OccurredAt, time.Second)

	var payload accountOpened
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "alice", payload.Owner)
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New(watermill.NopLogger{})
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs, err := bus.Subscriber().Subscribe(ctx, DefaultTopic)
	require.NoError(t, err)

	// Publish blocks until the subscriber acks, so it runs on its own
	// goroutine while this one consumes.
	e := accountOpened{Base: event.NewBase("acct-1"), Owner: "alice"}
	published := make(chan error, 1)
	go func() {
		published <- bus.Publish(ctx, e)
	}()

	select {
	case msg := <-msgs:
		envelope, err := MessageToEnvelope(msg)
		require.NoError(t, err)
		assert.Equal(t, "account.opened", envelope.EventName)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("no message received before timeout")
	}
	require.NoError(t, <-published)
}

func TestPublishAllPreservesOrder(t *testing.T) {
	bus := NewWithTopic("accounts", watermill.NopLogger{})
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs, err := bus.Subscriber().Subscribe(ctx, "accounts")
	require.NoError(t, err)

	owners := []string{"alice", "bob", "carol", "dave", "erin"}
	events := make([]event.Event, 0, len(owners))
	for _, owner := range owners {
		events = append(events, accountOpened{Base: event.NewBase("acct-" + owner), Owner: owner})
	}

	published := make(chan error, 1)
	go func() {
		published <- bus.PublishAll(ctx, events)
	}()

	var got []string
	for range events {
		select {
		case msg := <-msgs:
			envelope, err := MessageToEnvelope(msg)
			require.NoError(t, err)
			var payload accountOpened
			require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
			got = append(got, payload.Owner)
			msg.Ack()
		case <-ctx.Done():
			t.Fatal("missing message")
		}
	}
	require.NoError(t, <-published)
	assert.Equal(t, owners, got)
}

func TestPublishCancelledContext(t *testing.T) {
	bus := New(watermill.NopLogger{})
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(ctx, accountOpened{Base: event.NewBase("acct-1")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestHandlerBridgesDispatcherToBus(t *testing.T) {
	bus := New(watermill.NopLogger{})
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs, err := bus.Subscriber().Subscribe(ctx, DefaultTopic)
	require.NoError(t, err)

	d := event.NewDispatcher()
	d.Register("account.opened", bus.Handler(ctx))

	dispatched := make(chan error, 1)
	go func() {
		dispatched <- d.Dispatch(accountOpened{Base: event.NewBase("acct-1"), Owner: "alice"})
	}()

	select {
	case msg := <-msgs:
		assert.Equal(t, "account.opened", msg.Metadata.Get("event_name"))
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("no message received before timeout")
	}
	require.NoError(t, <-dispatched)
}
