// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"notifyd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports JSON field names and knows the notification tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// event_type accepts the known event types only
	_ = v.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return entity.EventType(fl.Field().String()).Valid()
	})

	// timezone accepts IANA zone names
	_ = v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		return entity.ValidTimezone(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

// Validate validates a request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors flattens validation errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return fields
}
