package comment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-comments-service/internal/model"
)

// Service orchestrates validation, authorization and store access for the
// four comment operations. It holds no per-request state.
type Service struct {
	comments Repository
	guard    *Guard

	now   func() time.Time
	newID func() string
}

func NewService(comments Repository, tasks TaskDirectory) *Service {
	return &Service{
		comments: comments,
		guard:    NewGuard(tasks, comments),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// List returns the comments on a task the caller owns, oldest first. A task
// with no comments yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, caller, taskIDParam string) ([]model.Comment, error) {
	if caller == "" {
		return nil, model.ErrUnauthenticated
	}
	taskID, err := ValidateTaskID(taskIDParam)
	if err != nil {
		return nil, err
	}
	if err := s.guard.CanCommentOn(ctx, caller, taskID); err != nil {
		return nil, err
	}
	return s.comments.ListByTask(ctx, taskID, caller)
}

// Create validates the payload, checks task ownership and inserts a new
// comment authored by the caller.
func (s *Service) Create(ctx context.Context, caller string, in CreateInput) (model.Comment, error) {
	if caller == "" {
		return model.Comment{}, model.ErrUnauthenticated
	}
	content, taskID, err := ValidateCreate(in)
	if err != nil {
		return model.Comment{}, err
	}
	if err := s.guard.CanCommentOn(ctx, caller, taskID); err != nil {
		return model.Comment{}, err
	}

	now := s.now()
	c := model.Comment{
		ID:        s.newID(),
		Content:   content,
		TaskID:    taskID,
		UserID:    caller,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Insert(ctx, c); err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// Update replaces the content of a comment the caller authored. Author,
// parent task and created_at are immutable.
func (s *Service) Update(ctx context.Context, caller string, in UpdateInput) (model.Comment, error) {
	if caller == "" {
		return model.Comment{}, model.ErrUnauthenticated
	}
	id, content, err := ValidateUpdate(in)
	if err != nil {
		return model.Comment{}, err
	}
	if err := s.guard.CanMutate(ctx, caller, id); err != nil {
		return model.Comment{}, err
	}
	return s.comments.UpdateContent(ctx, id, caller, content, s.now())
}

// Delete removes a comment the caller authored.
func (s *Service) Delete(ctx context.Context, caller, idParam string) error {
	if caller == "" {
		return model.ErrUnauthenticated
	}
	id, err := ValidateID(idParam)
	if err != nil {
		return err
	}
	if err := s.guard.CanMutate(ctx, caller, id); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id, caller)
}
