package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-comments-service/internal/model"
)

// Service implements owner-scoped task CRUD. It is the simpler sibling of
// the comment service: no cross-entity check, ownership only.
type Service struct {
	tasks Repository

	now   func() time.Time
	newID func() string
}

func NewService(tasks Repository) *Service {
	return &Service{
		tasks: tasks,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *Service) Create(ctx context.Context, caller string, in CreateInput) (model.Task, error) {
	if caller == "" {
		return model.Task{}, model.ErrUnauthenticated
	}
	in, err := validateCreate(in)
	if err != nil {
		return model.Task{}, err
	}

	now := s.now()
	t := model.Task{
		ID:          s.newID(),
		Title:       *in.Title,
		Description: strings.TrimSpace(in.Description),
		Status:      model.TaskStatus(in.Status),
		Priority:    model.TaskPriority(in.Priority),
		UserID:      caller,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Insert(ctx, t); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, caller, statusParam string) ([]model.Task, error) {
	if caller == "" {
		return nil, model.ErrUnauthenticated
	}
	status, err := validateStatusFilter(statusParam)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByOwner(ctx, caller, status)
}

func (s *Service) Get(ctx context.Context, caller, idParam string) (model.Task, error) {
	if caller == "" {
		return model.Task{}, model.ErrUnauthenticated
	}
	id, err := requireID(idParam)
	if err != nil {
		return model.Task{}, err
	}
	return s.tasks.GetOwned(ctx, id, caller)
}

// Update applies the fields the client sent to a task the caller owns.
func (s *Service) Update(ctx context.Context, caller, idParam string, in UpdateInput) (model.Task, error) {
	if caller == "" {
		return model.Task{}, model.ErrUnauthenticated
	}
	id, err := requireID(idParam)
	if err != nil {
		return model.Task{}, err
	}
	in, err = validateUpdate(in)
	if err != nil {
		return model.Task{}, err
	}

	t, err := s.tasks.GetOwned(ctx, id, caller)
	if err != nil {
		return model.Task{}, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		t.Status = model.TaskStatus(*in.Status)
	}
	if in.Priority != nil {
		t.Priority = model.TaskPriority(*in.Priority)
	}
	t.UpdatedAt = s.now()

	return s.tasks.Update(ctx, t)
}

// Delete removes a task the caller owns; its comments go with it.
func (s *Service) Delete(ctx context.Context, caller, idParam string) error {
	if caller == "" {
		return model.ErrUnauthenticated
	}
	id, err := requireID(idParam)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id, caller)
}

func requireID(param string) (string, error) {
	id := strings.TrimSpace(param)
	if id == "" {
		return "", &model.ValidationError{
			Code:    model.CodeMissingParameter,
			Field:   "id",
			Message: "id query parameter is required",
		}
	}
	return id, nil
}
