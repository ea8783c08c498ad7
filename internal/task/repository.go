package task

import (
	"context"

	"task-comments-service/internal/model"
)

// Repository is the task slice of the ownership store. Single-row reads and
// mutations carry the owner predicate inside the query; deleting a task
// removes its comments (the store's cascade, not ours).
type Repository interface {
	Insert(ctx context.Context, t model.Task) error
	// ListByOwner returns the owner's tasks, newest first. status narrows
	// the result when non-empty.
	ListByOwner(ctx context.Context, ownerID, status string) ([]model.Task, error)
	GetOwned(ctx context.Context, id, ownerID string) (model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}
