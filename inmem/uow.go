// Package inmem provides in-memory reference implementations of the
// repository and unit-of-work contracts. They back tests and lightweight
// deployments; durable persistence belongs to an infrastructure layer.
package inmem

import (
	"context"
	"sync"
)

// committer is implemented by repositories registered with a UnitOfWork.
type committer interface {
	commit() int
}

// UnitOfWork batches mutations staged through its repositories and applies
// them on SaveChanges. Safe for concurrent use.
type UnitOfWork struct {
	mu    sync.Mutex
	repos []committer
}

// NewUnitOfWork creates an empty unit of work. Repositories attach themselves
// via NewRepository.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

// SaveChanges applies all staged mutations and returns the number of records
// actually affected. When ctx is already done nothing is applied.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	affected := 0
	for _, repo := range u.repos {
		affected += repo.commit()
	}
	return affected, nil
}

func (u *UnitOfWork) register(c committer) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.repos = append(u.repos, c)
}
