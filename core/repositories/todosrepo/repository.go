// Package todosrepo provides read access to the task list.
package todosrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/todoview/core/repositories"
	"github.com/jrazmi/todoview/sdk/logger"
)

// Storer defines the data storage interface for Task.
type Storer interface {
	List(ctx context.Context, filter QueryFilter) ([]Task, error)
	Get(ctx context.Context, id int) (Task, error)
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns the tasks matching filter in store order.
func (r *Repository) List(ctx context.Context, filter QueryFilter) ([]Task, error) {
	tasks, err := r.storer.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	r.log.DebugContext(ctx, "listed tasks", "count", len(tasks), "completed", filterValue(filter))
	return tasks, nil
}

// Get returns the task with id or repositories.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int) (Task, error) {
	task, err := r.storer.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			r.log.ErrorContext(ctx, "get task", "id", id, "err", err)
		}
		return Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

// Create is refused: the task list is fixed at startup.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	r.log.WarnContext(ctx, "refused task create", "title", input.Title)
	return Task{}, fmt.Errorf("create task: %w", repositories.ErrOperationNotSupported)
}

// Update is refused: the task list is fixed at startup.
func (r *Repository) Update(ctx context.Context, id int, input UpdateTask) error {
	r.log.WarnContext(ctx, "refused task update", "id", id)
	return fmt.Errorf("update task %d: %w", id, repositories.ErrOperationNotSupported)
}

// Delete is refused: the task list is fixed at startup.
func (r *Repository) Delete(ctx context.Context, id int) error {
	r.log.WarnContext(ctx, "refused task delete", "id", id)
	return fmt.Errorf("delete task %d: %w", id, repositories.ErrOperationNotSupported)
}

func filterValue(f QueryFilter) string {
	if f.Completed == nil {
		return "any"
	}
	if *f.Completed {
		return "true"
	}
	return "false"
}
