package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"task-comments-service/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		t.Skip("DB_URL not set (integration test)")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insertTestTask(t *testing.T, db *sql.DB, owner string) model.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := model.Task{
		ID:        "task_it_" + now.Format("20060102_150405.000000"),
		Title:     "integration fixture",
		Status:    model.StatusPending,
		Priority:  model.PriorityMedium,
		UserID:    owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := NewTaskRepo(db).Insert(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM tasks WHERE id = $1`, task.ID)
	})
	return task
}

func TestCommentRepo_OwnershipPredicates(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepo(db)
	ctx := context.Background()

	task := insertTestTask(t, db, "it_user_1")

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := model.Comment{
		ID:        "cmt_it_" + now.Format("20060102_150405.000000"),
		Content:   "first",
		TaskID:    task.ID,
		UserID:    "it_user_1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Insert(ctx, c); err != nil {
		t.Fatal(err)
	}

	// the author sees it
	got, err := repo.GetAuthored(ctx, c.ID, "it_user_1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "first" {
		t.Fatalf("content = %q", got.Content)
	}

	// anyone else does not
	if _, err := repo.GetAuthored(ctx, c.ID, "it_user_2"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("foreign get: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateContent(ctx, c.ID, "it_user_2", "hijack", now); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("foreign update: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, c.ID, "it_user_2"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("foreign delete: err = %v, want ErrNotFound", err)
	}

	// list is scoped through the task's owner
	list, err := repo.ListByTask(ctx, task.ID, "it_user_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}
	foreign, err := repo.ListByTask(ctx, task.ID, "it_user_2")
	if err != nil {
		t.Fatal(err)
	}
	if len(foreign) != 0 {
		t.Fatalf("foreign list saw %d comments", len(foreign))
	}

	if err := repo.Delete(ctx, c.ID, "it_user_1"); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_TaskDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	comments := NewCommentRepo(db)
	tasks := NewTaskRepo(db)
	ctx := context.Background()

	task := insertTestTask(t, db, "it_user_1")

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := model.Comment{
		ID:        "cmt_cascade_" + now.Format("20060102_150405.000000"),
		Content:   "soon orphaned",
		TaskID:    task.ID,
		UserID:    "it_user_1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := comments.Insert(ctx, c); err != nil {
		t.Fatal(err)
	}

	if err := tasks.Delete(ctx, task.ID, "it_user_1"); err != nil {
		t.Fatal(err)
	}

	if _, err := comments.GetAuthored(ctx, c.ID, "it_user_1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("comment survived cascade: err = %v", err)
	}
}
