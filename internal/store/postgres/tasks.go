package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"task-comments-service/internal/model"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Insert(ctx context.Context, t model.Task) error {
	const q = `
INSERT INTO tasks (id, title, description, status, priority, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err := r.db.ExecContext(ctx, q,
		t.ID, t.Title, t.Description, t.Status, t.Priority, t.UserID, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID, status string) ([]model.Task, error) {
	const baseQ = `
SELECT id, title, description, status, priority, user_id, created_at, updated_at
FROM tasks
WHERE user_id = $1
ORDER BY created_at DESC;
`
	const filteredQ = `
SELECT id, title, description, status, priority, user_id, created_at, updated_at
FROM tasks
WHERE user_id = $1 AND status = $2
ORDER BY created_at DESC;
`
	var rows *sql.Rows
	var err error
	if status == "" {
		rows, err = r.db.QueryContext(ctx, baseQ, ownerID)
	} else {
		rows, err = r.db.QueryContext(ctx, filteredQ, ownerID, status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
			&t.UserID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetOwned applies the owner predicate inside the query, so "absent" and
// "not yours" come back as the same ErrNotFound.
func (r *TaskRepo) GetOwned(ctx context.Context, id, ownerID string) (model.Task, error) {
	const q = `
SELECT id, title, description, status, priority, user_id, created_at, updated_at
FROM tasks
WHERE id = $1 AND user_id = $2;
`
	var t model.Task
	err := r.db.QueryRowContext(ctx, q, id, ownerID).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.UserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	const q = `
UPDATE tasks
SET title = $3,
    description = $4,
    status = $5,
    priority = $6,
    updated_at = $7
WHERE id = $1 AND user_id = $2
RETURNING id, title, description, status, priority, user_id, created_at, updated_at;
`
	var out model.Task
	err := r.db.QueryRowContext(ctx, q,
		t.ID, t.UserID, t.Title, t.Description, t.Status, t.Priority, t.UpdatedAt,
	).Scan(
		&out.ID, &out.Title, &out.Description, &out.Status, &out.Priority,
		&out.UserID, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}
	return out, nil
}

// Delete removes the owner's task; comments follow via the FK cascade.
func (r *TaskRepo) Delete(ctx context.Context, id, ownerID string) error {
	const q = `DELETE FROM tasks WHERE id = $1 AND user_id = $2;`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if ra == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Ping is used by the readiness endpoint.
func (r *TaskRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}
