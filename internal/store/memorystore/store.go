// Package memorystore is an in-memory ownership store. It backs tests and
// the STORE=memory dev mode with the same semantics the Postgres store
// enforces: ownership predicates on single-row access and comment cascade
// on task deletion.
package memorystore

import (
	"context"
	"sort"
	"sync"
	"time"

	"task-comments-service/internal/model"
)

type commentRow struct {
	model.Comment
	seq uint64 // insertion order; tie-break for equal created_at
}

// Store holds the shared state. Tasks() and Comments() expose the two
// repository views over it.
type Store struct {
	mu       sync.RWMutex
	tasks    map[string]model.Task
	comments map[string]commentRow
	seq      uint64
}

func NewStore() *Store {
	return &Store{
		tasks:    make(map[string]model.Task),
		comments: make(map[string]commentRow),
	}
}

func (s *Store) Tasks() *TaskStore       { return &TaskStore{s: s} }
func (s *Store) Comments() *CommentStore { return &CommentStore{s: s} }

// TaskStore implements task.Repository and comment.TaskDirectory.
type TaskStore struct {
	s *Store
}

func (r *TaskStore) Insert(ctx context.Context, t model.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks[t.ID] = t
	return nil
}

func (r *TaskStore) ListByOwner(ctx context.Context, ownerID, status string) ([]model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		if t.UserID != ownerID {
			continue
		}
		if status != "" && t.Status != model.TaskStatus(status) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *TaskStore) GetOwned(ctx context.Context, id, ownerID string) (model.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok || t.UserID != ownerID {
		return model.Task{}, model.ErrNotFound
	}
	return t, nil
}

func (r *TaskStore) Update(ctx context.Context, t model.Task) (model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[t.ID]
	if !ok || cur.UserID != t.UserID {
		return model.Task{}, model.ErrNotFound
	}
	r.s.tasks[t.ID] = t
	return t, nil
}

func (r *TaskStore) Delete(ctx context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok || t.UserID != ownerID {
		return model.ErrNotFound
	}
	delete(r.s.tasks, id)

	// cascade: a task takes its comments with it
	for cid, c := range r.s.comments {
		if c.TaskID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

// CommentStore implements comment.Repository.
type CommentStore struct {
	s *Store
}

func (r *CommentStore) ListByTask(ctx context.Context, taskID, ownerID string) ([]model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return nil, model.ErrNotFound
	}

	rows := make([]commentRow, 0)
	for _, c := range r.s.comments {
		if c.TaskID == taskID {
			rows = append(rows, c)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].seq < rows[j].seq
		}
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})

	out := make([]model.Comment, len(rows))
	for i, row := range rows {
		out[i] = row.Comment
	}
	return out, nil
}

func (r *CommentStore) Insert(ctx context.Context, c model.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[c.TaskID]; !ok {
		// mirrors the foreign-key constraint
		return model.ErrNotFound
	}
	r.s.seq++
	r.s.comments[c.ID] = commentRow{Comment: c, seq: r.s.seq}
	return nil
}

func (r *CommentStore) GetAuthored(ctx context.Context, id, authorID string) (model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok || c.UserID != authorID {
		return model.Comment{}, model.ErrNotFound
	}
	return c.Comment, nil
}

func (r *CommentStore) UpdateContent(ctx context.Context, id, authorID, content string, updatedAt time.Time) (model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.comments[id]
	if !ok || c.UserID != authorID {
		return model.Comment{}, model.ErrNotFound
	}
	c.Content = content
	c.UpdatedAt = updatedAt
	r.s.comments[id] = c
	return c.Comment, nil
}

func (r *CommentStore) Delete(ctx context.Context, id, authorID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.comments[id]
	if !ok || c.UserID != authorID {
		return model.ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}
