package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-comments-service/internal/model"
)

type fakeRepo struct {
	byID map[string]model.Task
}

func newFakeRepo(existing ...model.Task) *fakeRepo {
	f := &fakeRepo{byID: make(map[string]model.Task)}
	for _, t := range existing {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeRepo) Insert(ctx context.Context, t model.Task) error {
	f.byID[t.ID] = t
	return nil
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID, status string) ([]model.Task, error) {
	out := make([]model.Task, 0)
	for _, t := range f.byID {
		if t.UserID != ownerID {
			continue
		}
		if status != "" && t.Status != model.TaskStatus(status) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) GetOwned(ctx context.Context, id, ownerID string) (model.Task, error) {
	t, ok := f.byID[id]
	if !ok || t.UserID != ownerID {
		return model.Task{}, model.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	cur, ok := f.byID[t.ID]
	if !ok || cur.UserID != t.UserID {
		return model.Task{}, model.ErrNotFound
	}
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id, ownerID string) error {
	t, ok := f.byID[id]
	if !ok || t.UserID != ownerID {
		return model.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "task_1" }
	return svc
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService(newFakeRepo())

	created, err := svc.Create(context.Background(), "user_1", CreateInput{
		Title: strPtr("  Ship it  "),
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if created.Title != "Ship it" {
		t.Fatalf("title = %q, want trimmed", created.Title)
	}
	if created.Status != model.StatusPending || created.Priority != model.PriorityMedium {
		t.Fatalf("defaults not applied: %+v", created)
	}
	if created.UserID != "user_1" {
		t.Fatalf("owner = %q", created.UserID)
	}
}

func TestCreate_RejectsBadEnum(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), "user_1", CreateInput{
		Title:  strPtr("Ship it"),
		Status: "done", // not a valid status
	})
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Code != model.CodeInvalidField {
		t.Fatalf("expected invalid_field, got %v", err)
	}
}

func TestCreate_RejectsMissingOrBlankTitle(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), "user_1", CreateInput{})
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Code != model.CodeMissingField {
		t.Fatalf("expected missing_field, got %v", err)
	}

	_, err = svc.Create(context.Background(), "user_1", CreateInput{Title: strPtr("   ")})
	if !errors.As(err, &ve) || ve.Code != model.CodeInvalidField {
		t.Fatalf("expected invalid_field for blank title, got %v", err)
	}
}

func TestUpdate_PartialAndOwnerOnly(t *testing.T) {
	existing := model.Task{
		ID: "t1", Title: "Original", Status: model.StatusPending,
		Priority: model.PriorityLow, UserID: "user_1",
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	repo := newFakeRepo(existing)
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), "user_2", "t1", UpdateInput{Title: strPtr("steal")})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), "user_1", "t1", UpdateInput{
		Status: strPtr("completed"),
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Fatalf("status = %q", updated.Status)
	}
	if updated.Title != "Original" {
		t.Fatalf("title should be untouched, got %q", updated.Title)
	}
	if !updated.CreatedAt.Equal(existing.CreatedAt) {
		t.Fatalf("created_at changed")
	}
}

func TestList_StatusFilterValidated(t *testing.T) {
	svc := newTestService(newFakeRepo(
		model.Task{ID: "t1", UserID: "user_1", Status: model.StatusPending},
		model.Task{ID: "t2", UserID: "user_1", Status: model.StatusCompleted},
		model.Task{ID: "t3", UserID: "user_2", Status: model.StatusPending},
	))

	out, err := svc.List(context.Background(), "user_1", "pending")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(out) != 1 || out[0].ID != "t1" {
		t.Fatalf("filter returned %v", out)
	}

	_, err = svc.List(context.Background(), "user_1", "archived")
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Code != model.CodeInvalidField {
		t.Fatalf("expected invalid_field, got %v", err)
	}
}

func TestDelete_OwnerOnly(t *testing.T) {
	repo := newFakeRepo(model.Task{ID: "t1", UserID: "user_1"})
	svc := newTestService(repo)

	if err := svc.Delete(context.Background(), "user_2", "t1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user_1", "t1"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user_1", ""); err == nil {
		t.Fatalf("expected missing_parameter error")
	}
}
