package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/baotoq/buildingblocks/domain/event"
)

// Compile-time interface check
var _ AggregateRoot = (*Entity)(nil)

// Audit carries who/when metadata for a persisted domain object.
// ModifiedAt stays zero and ModifiedBy empty until the first SetModified call.
type Audit struct {
	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

// Entity is the base type embedded by domain aggregates. It owns an identity,
// audit metadata and a buffer of pending domain events.
//
// The event buffer is exclusively owned: it grows only through RaiseEvent,
// which the embedding aggregate calls from its business methods, and shrinks
// only through ClearDomainEvents once a dispatcher has drained it. External
// callers read it through the DomainEvents snapshot.
//
// Entity is not safe for concurrent mutation; callers synchronize externally
// if they share one instance across goroutines.
type Entity struct {
	id     uuid.UUID
	audit  Audit
	events []event.Event
}

// New creates an Entity with a fresh unique identifier and the current UTC
// instant as creation time. No events are raised; embedding aggregates raise
// their own creation events.
func New() Entity {
	return Entity{
		id:    uuid.Must(uuid.NewV7()),
		audit: Audit{CreatedAt: time.Now().UTC()},
	}
}

// Reconstruct rebuilds an Entity from persisted state. It is meant for
// repository implementations and raises no events.
func Reconstruct(id uuid.UUID, audit Audit) Entity {
	return Entity{
		id:    id,
		audit: audit,
	}
}

// ID returns the entity's unique identifier.
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Audit returns a copy of the entity's audit metadata.
func (e *Entity) Audit() Audit {
	return e.audit
}

// SetCreated records the creating actor and re-stamps the creation instant.
// It is intended for first-persistence finalization; note that calling it
// again overwrites both fields.
func (e *Entity) SetCreated(createdBy string) {
	e.audit.CreatedBy = createdBy
	e.audit.CreatedAt = time.Now().UTC()
}

// SetModified stamps the modification instant and records the modifying actor.
// An empty modifiedBy records an anonymous modification. The identifier and
// creation metadata are never touched.
func (e *Entity) SetModified(modifiedBy string) {
	e.audit.ModifiedAt = time.Now().UTC()
	e.audit.ModifiedBy = modifiedBy
}

// RaiseEvent appends a domain event to the pending buffer. It is exported on
// the embedded base so that only the embedding aggregate's business methods
// reach it; application code consumes events via DomainEvents.
func (e *Entity) RaiseEvent(evt event.Event) {
	e.events = append(e.events, evt)
}

// DomainEvents returns a snapshot of the pending events in raise order.
// Mutating the returned slice does not affect the entity.
func (e *Entity) DomainEvents() []event.Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]event.Event, len(e.events))
	copy(out, e.events)
	return out
}

// ClearDomainEvents empties the pending buffer after dispatch.
// Clearing an already-empty buffer is a no-op.
func (e *Entity) ClearDomainEvents() {
	e.events = nil
}
