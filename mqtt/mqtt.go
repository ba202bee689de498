// Package mqtt defines a thin broker-agnostic MQTT client contract and the
// message value it carries. Broker semantics (sessions, retained-message
// lifecycles, reconnect policy) belong to the implementing infrastructure.
package mqtt

import "context"

// QoS levels as defined by the MQTT specification.
const (
	QoSAtMostOnce  byte = 0
	QoSAtLeastOnce byte = 1
	QoSExactlyOnce byte = 2
)

// DefaultQoS is applied by NewMessage when no level is chosen explicitly.
const DefaultQoS = QoSAtLeastOnce

// Message is an immutable value bundling everything needed to publish:
// topic, payload, retain flag (default false) and QoS level (default 1).
type Message struct {
	Topic   string
	Payload string
	Retain  bool
	QoS     byte
}

// NewMessage creates a Message with the default retain flag and QoS level.
func NewMessage(topic, payload string) Message {
	return Message{
		Topic:   topic,
		Payload: payload,
		QoS:     DefaultQoS,
	}
}

// WithRetain returns a copy of the message with the retain flag set.
func (m Message) WithRetain(retain bool) Message {
	m.Retain = retain
	return m
}

// WithQoS returns a copy of the message with the given QoS level.
func (m Message) WithQoS(qos byte) Message {
	m.QoS = qos
	return m
}

// Validate checks the message against the contract: non-empty topic and a
// QoS level of 0, 1 or 2.
func (m Message) Validate() error {
	if m.Topic == "" {
		return ErrInvalidTopic
	}
	if m.QoS > QoSExactlyOnce {
		return ErrInvalidQoS
	}
	return nil
}

// Client is the lifecycle contract for an MQTT connection. All blocking
// operations honor context cancellation.
type Client interface {
	// Connect establishes the connection to the broker.
	Connect(ctx context.Context) error

	// Publish sends a message to its topic. The client must be connected.
	Publish(ctx context.Context, msg Message) error

	// IsConnected reports the current connection state.
	IsConnected() bool

	// Close disconnects if connected and releases resources. Closing an
	// already-closed client is a no-op.
	Close(ctx context.Context) error
}
