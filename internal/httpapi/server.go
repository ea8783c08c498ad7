package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"task-comments-service/internal/auth"
	"task-comments-service/internal/comment"
	"task-comments-service/internal/observability/jsonlog"
	"task-comments-service/internal/task"
)

// DBPinger is what the readiness endpoint needs from the store. A nil
// pinger (memory mode) is always ready.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	comments *comment.Service
	tasks    *task.Service

	handler http.Handler
}

func NewServer(comments *comment.Service, tasks *task.Service, verifier *auth.Verifier, db DBPinger, logger *jsonlog.Logger) *Server {
	s := &Server{
		comments: comments,
		tasks:    tasks,
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	})

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", handleReadyz(db))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(withIdentity(verifier))

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", s.handleListComments)
			r.Post("/", s.handleCreateComment)
			r.Put("/", s.handleUpdateComment)
			r.Delete("/", s.handleDeleteComment)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Put("/", s.handleUpdateTask)
			r.Delete("/", s.handleDeleteTask)
		})
	})

	// CORS sits outermost so even 404/405 responses and pre-flights carry
	// the headers without touching identity resolution.
	s.handler = crossOrigin(withRequestID(logging(logger)(r)))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func handleReadyz(db DBPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				writeError(w, http.StatusServiceUnavailable, "not_ready", "store unreachable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
