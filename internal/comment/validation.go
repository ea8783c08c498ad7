package comment

import (
	"strings"
	"unicode/utf8"

	"task-comments-service/internal/model"
	"task-comments-service/internal/validate"
)

// MaxContentLength is the limit on trimmed content, in code points.
const MaxContentLength = 1000

// CreateInput is the POST payload. Pointer fields distinguish an absent
// field from an empty one.
type CreateInput struct {
	Content *string `json:"content" validate:"required"`
	TaskID  *string `json:"task_id" validate:"required"`
}

// UpdateInput is the PUT payload. ID is taken from the query string and
// overrides anything in the body.
type UpdateInput struct {
	ID      *string `json:"id" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// ValidateCreate checks shape and content rules and returns the trimmed
// content and task id. No store access; deterministic given input.
func ValidateCreate(in CreateInput) (content, taskID string, err error) {
	if err := validate.Struct(in); err != nil {
		return "", "", err
	}
	content, err = trimContent(*in.Content)
	if err != nil {
		return "", "", err
	}
	taskID = strings.TrimSpace(*in.TaskID)
	if taskID == "" {
		return "", "", &model.ValidationError{
			Code:    model.CodeMissingField,
			Field:   "task_id",
			Message: "task_id is required",
		}
	}
	return content, taskID, nil
}

// ValidateUpdate checks shape and content rules and returns the comment id
// and trimmed content.
func ValidateUpdate(in UpdateInput) (id, content string, err error) {
	if err := validate.Struct(in); err != nil {
		return "", "", err
	}
	id = strings.TrimSpace(*in.ID)
	if id == "" {
		return "", "", &model.ValidationError{
			Code:    model.CodeMissingField,
			Field:   "id",
			Message: "id is required",
		}
	}
	content, err = trimContent(*in.Content)
	if err != nil {
		return "", "", err
	}
	return id, content, nil
}

// ValidateID checks the id query parameter.
func ValidateID(param string) (string, error) {
	return requireParam(param, "id")
}

// ValidateTaskID checks the task_id query parameter.
func ValidateTaskID(param string) (string, error) {
	return requireParam(param, "task_id")
}

func requireParam(param, name string) (string, error) {
	p := strings.TrimSpace(param)
	if p == "" {
		return "", &model.ValidationError{
			Code:    model.CodeMissingParameter,
			Field:   name,
			Message: name + " query parameter is required",
		}
	}
	return p, nil
}

func trimContent(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &model.ValidationError{
			Code:    model.CodeEmptyContent,
			Field:   "content",
			Message: "content must not be blank",
		}
	}
	if utf8.RuneCountInString(trimmed) > MaxContentLength {
		return "", &model.ValidationError{
			Code:    model.CodeContentTooLong,
			Field:   "content",
			Message: "content must be at most 1000 characters",
		}
	}
	return trimmed, nil
}
