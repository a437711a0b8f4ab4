// Package todosmemstore is an in-memory, read-only task store.
package todosmemstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/todoview/core/repositories"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
)

// ErrDuplicateID is returned when a seed contains the same id twice.
var ErrDuplicateID = errors.New("duplicate task id")

// Store holds a fixed, ordered task sequence. It is safe for concurrent use
// because nothing writes to it after New returns.
type Store struct {
	tasks []todosrepo.Task
	index map[int]int
}

// New copies seed into a new Store, keeping its order.
func New(seed []todosrepo.Task) (*Store, error) {
	s := &Store{
		tasks: make([]todosrepo.Task, len(seed)),
		index: make(map[int]int, len(seed)),
	}
	for i, t := range seed {
		if _, ok := s.index[t.ID]; ok {
			return nil, fmt.Errorf("task %d: %w", t.ID, ErrDuplicateID)
		}
		s.index[t.ID] = i
		s.tasks[i] = t
	}
	return s, nil
}

// Len reports the number of tasks held.
func (s *Store) Len() int {
	return len(s.tasks)
}

// List returns copies of the tasks matching filter, in seed order. The
// result is never nil.
func (s *Store) List(ctx context.Context, filter todosrepo.QueryFilter) ([]todosrepo.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]todosrepo.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Get returns the task with id.
func (s *Store) Get(ctx context.Context, id int) (todosrepo.Task, error) {
	if err := ctx.Err(); err != nil {
		return todosrepo.Task{}, err
	}
	i, ok := s.index[id]
	if !ok {
		return todosrepo.Task{}, repositories.ErrNotFound
	}
	return s.tasks[i], nil
}
