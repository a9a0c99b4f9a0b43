// Package validate turns struct-tag rules into the human-readable messages
// returned to API clients.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/msomdec/course-api/internal/domain"
)

// Validator checks request payloads declared with `validate` struct tags.
// It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s. It returns nil when every rule passes, or a
// *domain.ValidationError holding one message per failing field in struct
// field order.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, Message(fe.Field(), fe.Tag()))
	}
	return domain.NewValidationError(messages...)
}

// Message returns the client-facing message for a failed rule on field.
func Message(field, tag string) string {
	switch tag {
	case "email":
		return "Please provide a valid email address"
	case "required", "min":
		return fmt.Sprintf("Please provide a value for the %q field", field)
	default:
		return fmt.Sprintf("The %q field is invalid", field)
	}
}
