package inmem

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/baotoq/buildingblocks/domain"
	"github.com/baotoq/buildingblocks/guard"
)

type opKind int

const (
	opAdd opKind = iota
	opUpdate
	opDelete
)

type stagedOp[T domain.Identifiable] struct {
	kind   opKind
	entity T
}

// Repository is a map-backed implementation of domain.Repository. Mutations
// are staged and become visible only after the owning UnitOfWork commits.
// Reads see committed state, in insertion order. Safe for concurrent use.
type Repository[T domain.Identifiable] struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]T
	order  []uuid.UUID
	staged []stagedOp[T]
}

// Compile-time interface check
var _ domain.Repository[domain.Identifiable] = (*Repository[domain.Identifiable])(nil)

// NewRepository creates a repository and registers it with the unit of work
// that will commit its staged mutations.
func NewRepository[T domain.Identifiable](uow *UnitOfWork) *Repository[T] {
	r := &Repository[T]{
		items: make(map[uuid.UUID]T),
	}
	uow.register(r)
	return r
}

// GetByID returns the committed entity with the given id, or
// domain.ErrNotFound.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return zero, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return item, nil
}

// Add stages a new entity for insertion on commit.
func (r *Repository[T]) Add(ctx context.Context, entity T) error {
	return r.stage(ctx, opAdd, entity)
}

// Update stages an entity overwrite on commit.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	return r.stage(ctx, opUpdate, entity)
}

// Delete stages removal of an entity on commit. Deleting an entity that was
// never committed is applied as a no-op and not counted.
func (r *Repository[T]) Delete(ctx context.Context, entity T) error {
	return r.stage(ctx, opDelete, entity)
}

// Query lazily yields committed entities matching pred, in insertion order.
// A nil predicate matches everything. Iteration works over a snapshot, so
// commits during iteration are not observed.
func (r *Repository[T]) Query(ctx context.Context, pred func(T) bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		r.mu.RLock()
		snapshot := lo.Map(r.order, func(id uuid.UUID, _ int) T {
			return r.items[id]
		})
		r.mu.RUnlock()

		for _, item := range snapshot {
			if err := ctx.Err(); err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if pred != nil && !pred(item) {
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (r *Repository[T]) stage(ctx context.Context, kind opKind, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	guard.NotEmptyID(entity.ID(), "entity.ID")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, stagedOp[T]{kind: kind, entity: entity})
	return nil
}

// commit applies staged mutations and reports how many records changed.
// Called by the owning UnitOfWork under its lock.
func (r *Repository[T]) commit() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	affected := 0
	for _, op := range r.staged {
		id := op.entity.ID()
		switch op.kind {
		case opAdd, opUpdate:
			if _, ok := r.items[id]; !ok {
				r.order = append(r.order, id)
			}
			r.items[id] = op.entity
			affected++
		case opDelete:
			if _, ok := r.items[id]; ok {
				delete(r.items, id)
				r.order = slices.DeleteFunc(r.order, func(other uuid.UUID) bool {
					return other == id
				})
				affected++
			}
		}
	}
	r.staged = nil
	return affected
}
