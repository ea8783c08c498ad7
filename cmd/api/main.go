package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"task-comments-service/internal/auth"
	"task-comments-service/internal/comment"
	"task-comments-service/internal/config"
	"task-comments-service/internal/httpapi"
	"task-comments-service/internal/observability/jsonlog"
	"task-comments-service/internal/store/memorystore"
	"task-comments-service/internal/store/postgres"
	"task-comments-service/internal/task"
)

func main() {
	logger := jsonlog.New(os.Stdout, "task-comments-api")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", jsonlog.Fields{"err": err.Error()})
		os.Exit(1)
	}

	var (
		taskRepo    task.Repository
		commentRepo comment.Repository
		taskDir     comment.TaskDirectory
		pinger      httpapi.DBPinger
	)

	switch cfg.Store {
	case config.StoreMemory:
		st := memorystore.NewStore()
		taskRepo, commentRepo, taskDir = st.Tasks(), st.Comments(), st.Tasks()
		logger.Warn("using in-memory store; data is not persisted", nil)

	default:
		db, err := sql.Open("pgx", cfg.DBURL)
		if err != nil {
			logger.Error("open db", jsonlog.Fields{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			logger.Error("db ping", jsonlog.Fields{"err": err.Error()})
			os.Exit(1)
		}

		tr := postgres.NewTaskRepo(db)
		taskRepo, commentRepo, taskDir = tr, postgres.NewCommentRepo(db), tr
		pinger = db
	}

	commentSvc := comment.NewService(commentRepo, taskDir)
	taskSvc := task.NewService(taskRepo)
	verifier := auth.NewVerifier(cfg.AuthSecret)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewServer(commentSvc, taskSvc, verifier, pinger, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Root context cancelled on SIGINT/SIGTERM.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", jsonlog.Fields{"addr": srv.Addr, "store": cfg.Store})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", jsonlog.Fields{"err": err.Error()})
			os.Exit(1)
		}
	}()

	<-rootCtx.Done()
	logger.Info("shutdown signal received", nil)

	// Stop accepting new requests; wait for in-flight with timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", jsonlog.Fields{"err": err.Error()})
	}
	logger.Info("bye", nil)
}
