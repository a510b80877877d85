// Package validation holds the single rule set for request documents. The
// service guards incoming payloads with it and the repository re-checks every
// write with the same instance, so handler and store rules cannot drift.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/guest-services-api/internal/models"
)

// Error reports a document that breaks the request rules.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsError reports whether err carries a rule violation.
func IsError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

// Validator checks request documents and individual field values.
type Validator struct {
	validate *validator.Validate
}

// New registers the request tags on a fresh validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("request_status", func(fl validator.FieldLevel) bool {
		return models.RequestStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("request_priority", func(fl validator.FieldLevel) bool {
		return models.RequestPriority(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
}

// Request validates a whole document before it is written.
func (v *Validator) Request(req *models.Request) error {
	if req == nil {
		return &Error{Message: "request is required"}
	}
	if err := v.validate.Struct(req); err != nil {
		return translate(err)
	}
	return nil
}

// Status validates a raw status value.
func (v *Validator) Status(raw string) error {
	if !models.RequestStatus(raw).Valid() {
		return &Error{Field: string(models.RequestFieldStatus), Message: fmt.Sprintf("must be one of %s", joinStatuses())}
	}
	return nil
}

// Priority validates a raw priority value.
func (v *Validator) Priority(raw string) error {
	if !models.RequestPriority(raw).Valid() {
		return &Error{Field: string(models.RequestFieldPriority), Message: fmt.Sprintf("must be one of %s", joinPriorities())}
	}
	return nil
}

// Patch validates every value of a partial update. Checks run in a fixed
// order: unknown fields, priority, status, then the remaining values.
func (v *Validator) Patch(patch models.RequestPatch) error {
	for field := range patch {
		if !field.Updatable() {
			return &Error{Field: string(field), Message: "field cannot be updated"}
		}
	}
	for _, field := range []models.RequestField{models.RequestFieldPriority, models.RequestFieldStatus} {
		value, ok := patch[field]
		if !ok {
			continue
		}
		if value == nil {
			return &Error{Field: string(field), Message: "cannot be null"}
		}
		check := v.Priority
		if field == models.RequestFieldStatus {
			check = v.Status
		}
		if err := check(*value); err != nil {
			return err
		}
	}
	for field, value := range patch {
		if !field.Required() {
			continue
		}
		if value == nil {
			return &Error{Field: string(field), Message: "cannot be null"}
		}
		if err := v.validate.Var(*value, "required,notblank"); err != nil {
			return &Error{Field: string(field), Message: "is required"}
		}
	}
	return nil
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &Error{Message: err.Error()}
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "request_status":
		return &Error{Field: fe.Field(), Message: fmt.Sprintf("must be one of %s", joinStatuses())}
	case "request_priority":
		return &Error{Field: fe.Field(), Message: fmt.Sprintf("must be one of %s", joinPriorities())}
	default:
		return &Error{Field: fe.Field(), Message: "is required"}
	}
}

func joinStatuses() string {
	parts := make([]string, len(models.RequestStatuses))
	for i, s := range models.RequestStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinPriorities() string {
	parts := make([]string, len(models.RequestPriorities))
	for i, p := range models.RequestPriorities {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
