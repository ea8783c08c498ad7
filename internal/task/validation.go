package task

import (
	"strings"

	"task-comments-service/internal/model"
	"task-comments-service/internal/validate"
)

// CreateInput is the POST payload for a task. Status and priority are
// optional and default to pending/medium.
type CreateInput struct {
	Title       *string `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateInput is the PUT payload. Pointer fields allow partial updates:
// only fields the client sent are applied.
type UpdateInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

func validateCreate(in CreateInput) (CreateInput, error) {
	if err := validate.Struct(in); err != nil {
		return CreateInput{}, err
	}
	title := strings.TrimSpace(*in.Title)
	if title == "" {
		return CreateInput{}, &model.ValidationError{
			Code:    model.CodeInvalidField,
			Field:   "title",
			Message: "title must not be blank",
		}
	}
	in.Title = &title
	if in.Status == "" {
		in.Status = string(model.StatusPending)
	}
	if in.Priority == "" {
		in.Priority = string(model.PriorityMedium)
	}
	return in, nil
}

func validateUpdate(in UpdateInput) (UpdateInput, error) {
	if err := validate.Struct(in); err != nil {
		return UpdateInput{}, err
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return UpdateInput{}, &model.ValidationError{
				Code:    model.CodeInvalidField,
				Field:   "title",
				Message: "title must not be blank",
			}
		}
		in.Title = &title
	}
	return in, nil
}

// validateStatusFilter checks the optional ?status= list filter.
func validateStatusFilter(raw string) (string, error) {
	status := strings.TrimSpace(raw)
	switch status {
	case "", string(model.StatusPending), string(model.StatusInProgress), string(model.StatusCompleted):
		return status, nil
	default:
		return "", &model.ValidationError{
			Code:    model.CodeInvalidField,
			Field:   "status",
			Message: "status must be one of: pending, in_progress, completed",
		}
	}
}
