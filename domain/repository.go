package domain

import (
	"context"
	"errors"
	"iter"

	"github.com/google/uuid"

	"github.com/baotoq/buildingblocks/domain/event"
)

// ErrNotFound is returned by Repository.GetByID when no entity has the
// requested identifier.
var ErrNotFound = errors.New("entity not found")

// AggregateRoot is the interface for domain aggregates that raise events.
// The unit-of-work drains events from aggregates after a successful commit.
type AggregateRoot interface {
	// DomainEvents returns all uncommitted domain events.
	DomainEvents() []event.Event
	// ClearDomainEvents clears all domain events after dispatch.
	ClearDomainEvents()
}

// Identifiable is satisfied by any domain type embedding Entity.
type Identifiable interface {
	ID() uuid.UUID
}

// Repository defines the persistence contract for a single aggregate type.
// It is declared here and implemented in an infrastructure layer, following
// the Dependency Inversion Principle. All operations honor context
// cancellation and return ctx.Err() when the context is done.
type Repository[T Identifiable] interface {
	// GetByID retrieves an entity by its identifier.
	// Returns ErrNotFound when no entity has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (T, error)

	// Add stages a new entity for persistence.
	Add(ctx context.Context, entity T) error

	// Update stages changes to an existing entity.
	Update(ctx context.Context, entity T) error

	// Delete stages removal of an entity.
	Delete(ctx context.Context, entity T) error

	// Query returns a lazily-evaluated sequence of entities matching the
	// predicate. A nil predicate matches everything. Iteration errors
	// (including context cancellation) surface as the second element.
	Query(ctx context.Context, pred func(T) bool) iter.Seq2[T, error]
}

// UnitOfWork batches pending mutations and commits them as one atomic change.
type UnitOfWork interface {
	// SaveChanges commits all staged mutations and returns the number of
	// affected records. Nothing is applied when the context is done.
	SaveChanges(ctx context.Context) (int, error)
}
