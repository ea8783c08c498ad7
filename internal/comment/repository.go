package comment

import (
	"context"
	"time"

	"task-comments-service/internal/model"
)

// Repository is the comment slice of the ownership store. Every method that
// touches a single comment takes the acting user and applies the ownership
// predicate inside the query, so a row that exists but belongs to someone
// else is indistinguishable from an absent one (model.ErrNotFound).
type Repository interface {
	// ListByTask returns the task's comments in created_at ascending order.
	// The owner predicate is applied against the parent task.
	ListByTask(ctx context.Context, taskID, ownerID string) ([]model.Comment, error)
	Insert(ctx context.Context, c model.Comment) error
	GetAuthored(ctx context.Context, id, authorID string) (model.Comment, error)
	UpdateContent(ctx context.Context, id, authorID, content string, updatedAt time.Time) (model.Comment, error)
	Delete(ctx context.Context, id, authorID string) error
}

// TaskDirectory is the slice of the task store the comment service needs
// for its cross-entity ownership check.
type TaskDirectory interface {
	GetOwned(ctx context.Context, id, ownerID string) (model.Task, error)
}
