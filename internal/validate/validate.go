// Package validate wraps go-playground/validator so services share one
// configured instance and one mapping from tag failures to stable codes.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"task-comments-service/internal/model"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name, not the Go field name.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Struct runs tag validation and maps the first failure to a
// *model.ValidationError carrying a stable code.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return &model.ValidationError{
			Code:    model.CodeMissingField,
			Field:   field,
			Message: field + " is required",
		}
	case "max":
		return &model.ValidationError{
			Code:    model.CodeInvalidField,
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param()),
		}
	case "oneof":
		return &model.ValidationError{
			Code:    model.CodeInvalidField,
			Field:   field,
			Message: fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")),
		}
	default:
		return &model.ValidationError{
			Code:    model.CodeInvalidField,
			Field:   field,
			Message: field + " is invalid",
		}
	}
}
