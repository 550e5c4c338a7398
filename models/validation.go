package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the field's JSON name so clients see
	// "project_details", not "ProjectDetails".
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FieldError is a single validation issue on a named field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// FieldErrors converts a binding error into per-field messages. Errors that
// are not validator.ValidationErrors (malformed JSON, type mismatches) are
// reported against the body as a whole.
func FieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Error: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "url":
			msg = "must be a valid URL"
		case "gte":
			msg = fmt.Sprintf("must be at least %s", fe.Param())
		case "lte":
			msg = fmt.Sprintf("must be at most %s", fe.Param())
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("failed %s=%s validation", fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("failed %s validation", fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field: fe.Field(),
			Error: msg,
		})
	}

	return fieldErrors
}
