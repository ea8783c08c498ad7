package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"task-comments-service/internal/model"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// ListByTask joins through tasks so the read is scoped to the task's owner
// even though the service checked ownership already.
func (r *CommentRepo) ListByTask(ctx context.Context, taskID, ownerID string) ([]model.Comment, error) {
	const q = `
SELECT c.id, c.content, c.task_id, c.user_id, c.created_at, c.updated_at
FROM comments c
JOIN tasks t ON t.id = c.task_id
WHERE c.task_id = $1 AND t.user_id = $2
ORDER BY c.created_at ASC, c.id ASC;
`
	rows, err := r.db.QueryContext(ctx, q, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.TaskID, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepo) Insert(ctx context.Context, c model.Comment) error {
	const q = `
INSERT INTO comments (id, content, task_id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Content, c.TaskID, c.UserID, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetAuthored returns ErrNotFound for absent and foreign comments alike;
// the author predicate lives inside the query.
func (r *CommentRepo) GetAuthored(ctx context.Context, id, authorID string) (model.Comment, error) {
	const q = `
SELECT id, content, task_id, user_id, created_at, updated_at
FROM comments
WHERE id = $1 AND user_id = $2;
`
	var c model.Comment
	err := r.db.QueryRowContext(ctx, q, id, authorID).Scan(
		&c.ID, &c.Content, &c.TaskID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, err
	}
	return c, nil
}

func (r *CommentRepo) UpdateContent(ctx context.Context, id, authorID, content string, updatedAt time.Time) (model.Comment, error) {
	const q = `
UPDATE comments
SET content = $3,
    updated_at = $4
WHERE id = $1 AND user_id = $2
RETURNING id, content, task_id, user_id, created_at, updated_at;
`
	var c model.Comment
	err := r.db.QueryRowContext(ctx, q, id, authorID, content, updatedAt.UTC()).Scan(
		&c.ID, &c.Content, &c.TaskID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, err
	}
	return c, nil
}

func (r *CommentRepo) Delete(ctx context.Context, id, authorID string) error {
	const q = `DELETE FROM comments WHERE id = $1 AND user_id = $2;`
	res, err := r.db.ExecContext(ctx, q, id, authorID)
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
