package httpapi

import (
	"net/http"
	"strings"

	"task-comments-service/internal/comment"
	"task-comments-service/internal/model"
)

// One endpoint, four operations: GET lists by task_id, POST creates,
// PUT updates by id, DELETE removes by id.

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.comments.List(r.Context(), CallerID(r.Context()), r.URL.Query().Get("task_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var in comment.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	created, err := s.comments.Create(r.Context(), CallerID(r.Context()), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var in comment.UpdateInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	// the query parameter wins over anything in the body
	if id := strings.TrimSpace(r.URL.Query().Get("id")); id != "" {
		in.ID = &id
	}

	updated, err := s.comments.Update(r.Context(), CallerID(r.Context()), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	err := s.comments.Delete(r.Context(), CallerID(r.Context()), r.URL.Query().Get("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
