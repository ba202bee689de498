// Package event defines the domain-event model: immutable timestamped facts
// raised by entities and drained by a dispatcher.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is the base interface for all domain events.
// Events are immutable facts: once constructed they are only read, never changed.
type Event interface {
	// EventID returns the unique identifier of the event.
	EventID() string
	// EventName returns the name of the event, e.g. "user.registered".
	EventName() string
	// OccurredAt returns when the event occurred (UTC).
	OccurredAt() time.Time
	// AggregateID returns the ID of the aggregate that raised the event.
	AggregateID() string
}

// Base carries the fields common to all events. Concrete events embed it and
// implement EventName themselves:
//
//	type UserRegistered struct {
//		event.Base
//		Email string `json:"email"`
//	}
//
//	func (UserRegistered) EventName() string { return "user.registered" }
type Base struct {
	ID        string    `json:"event_id"`
	At        time.Time `json:"occurred_at"`
	Aggregate string    `json:"aggregate_id"`
}

// NewBase creates a Base with a fresh uuid-v7 identifier, stamped with the
// current UTC instant.
func NewBase(aggregateID string) Base {
	return Base{
		ID:        uuid.Must(uuid.NewV7()).String(),
		At:        time.Now().UTC(),
		Aggregate: aggregateID,
	}
}

// EventID returns the unique identifier of the event.
func (b Base) EventID() string {
	return b.ID
}

// OccurredAt returns when the event occurred.
func (b Base) OccurredAt() time.Time {
	return b.At
}

// AggregateID returns the ID of the aggregate that raised the event.
func (b Base) AggregateID() string {
	return b.Aggregate
}
