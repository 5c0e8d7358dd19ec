package validator

import (
	"errors"
	"hostel/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"isodate":  "{field} must be a valid date (YYYY-MM-DD)",
		"uuid":     "{field} must be a valid identifier",
		"url":      "{field} must be a valid URL",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())

	return strings.ReplaceAll(errStr, "{param}", valErr.Param())
}

func fieldErrors(err error) error {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	var result failure.ValidationErrors
	for _, valErr := range valErrors {
		result.Add(valErr.Field(), render(valErr))
	}

	return result
}
