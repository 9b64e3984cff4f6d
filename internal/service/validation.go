package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "portfolio-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationFailed converts a validator error into a ValidationError naming the first bad field
func ValidationFailed(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return apperrors.NewValidationError(field, validationMessage(fe))
	}
	return apperrors.NewValidationError("", fmt.Sprintf("validation failed: %v", err))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "datetime":
		return "expected a date formatted YYYY-MM-DD"
	case "url":
		return "must be an absolute URL"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
