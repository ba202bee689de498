package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baotoq/buildingblocks/domain/event"
)

type thingHappened struct {
	event.Base
	What string
}

func newThingHappened(aggregateID, what string) thingHappened {
	return thingHappened{
		Base: event.NewBase(aggregateID),
		What: what,
	}
}

func (e thingHappened) EventName() string {
	return "thing.happened"
}

func TestNewEntity(t *testing.T) {
	e := New()

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.False(t, e.Audit().CreatedAt.IsZero())
	assert.True(t, e.Audit().ModifiedAt.IsZero())
	assert.Empty(t, e.Audit().CreatedBy)
	assert.Empty(t, e.DomainEvents())
}

func TestNewEntityUniqueIDs(t *testing.T) {
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		e := New()
		require.False(t, seen[e.ID()], "duplicate entity id %s", e.ID())
		seen[e.ID()] = true
	}
}

func TestReconstruct(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	audit := Audit{CreatedAt: createdAt, CreatedBy: "importer"}

	e := Reconstruct(id, audit)

	assert.Equal(t, id, e.ID())
	assert.Equal(t, audit, e.Audit())
	assert.Empty(t, e.DomainEvents())
}

func TestSetCreatedRestampsCreation(t *testing.T) {
	e := New()
	before := e.Audit().CreatedAt

	time.Sleep(time.Millisecond)
	e.SetCreated("alice")

	assert.Equal(t, "alice", e.Audit().CreatedBy)
	assert.True(t, e.Audit().CreatedAt.After(before))

	// Calling again overwrites both fields.
	e.SetCreated("bob")
	assert.Equal(t, "bob", e.Audit().CreatedBy)
}

func TestSetModified(t *testing.T) {
	e := New()
	id := e.ID()
	createdAt := e.Audit().CreatedAt

	e.SetModified("alice")

	assert.Equal(t, id, e.ID())
	assert.Equal(t, createdAt, e.Audit().CreatedAt)
	assert.Equal(t, "alice", e.Audit().ModifiedBy)
	assert.False(t, e.Audit().ModifiedAt.IsZero())
}

func TestSetModifiedAnonymous(t *testing.T) {
	e := New()

	e.SetModified("")

	assert.Empty(t, e.Audit().ModifiedBy)
	assert.False(t, e.Audit().ModifiedAt.IsZero())
}

func TestRaiseAndClearDomainEvents(t *testing.T) {
	e := New()
	id := e.ID().String()

	e.RaiseEvent(newThingHappened(id, "first"))
	e.RaiseEvent(newThingHappened(id, "second"))

	events := e.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].(thingHappened).What)
	assert.Equal(t, "second", events[1].(thingHappened).What)

	e.ClearDomainEvents()
	assert.Empty(t, e.DomainEvents())

	// Clearing an already-empty buffer is a no-op.
	e.ClearDomainEvents()
	assert.Empty(t, e.DomainEvents())
}

func TestDomainEventsIsSnapshot(t *testing.T) {
	e := New()
	e.RaiseEvent(newThingHappened(e.ID().String(), "first"))

	events := e.DomainEvents()
	events[0] = newThingHappened(e.ID().String(), "tampered")

	assert.Equal(t, "first", e.DomainEvents()[0].(thingHappened).What)
}

func TestEntityImplementsAggregateRoot(t *testing.T) {
	e := New()

	var root AggregateRoot = &e
	e.RaiseEvent(newThingHappened(e.ID().String(), "first"))

	assert.Len(t, root.DomainEvents(), 1)
	root.ClearDomainEvents()
	assert.Empty(t, root.DomainEvents())
}
