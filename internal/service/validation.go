package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validationError converts validator output into a caller-facing message
// naming the first offending field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fe := fieldErrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		if fe.Kind() == reflect.Slice {
			msg = fmt.Sprintf("%s must contain at least %s item(s).", fe.Field(), fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
		}
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	case "gt":
		msg = fmt.Sprintf("%s must be greater than %s.", fe.Field(), fe.Param())
	case "gte":
		msg = fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid.", fe.Field())
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msg)
}

// round2 rounds to the two decimals the store keeps.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// nonNegative validates and rounds an amount.
func nonNegative(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, appErrors.Validation(fmt.Sprintf("%s must be a number.", field))
	}
	if v < 0 {
		return 0, appErrors.Validation(fmt.Sprintf("%s cannot be negative.", field))
	}
	return round2(v), nil
}

// trimmedOrNil trims s and maps blank to nil.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// passThrough keeps tagged errors and wraps anything else as internal.
func passThrough(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Internal(err, message)
}
