package validator

import (
	"encoding/json"
	"fmt"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerISODateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDate(value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("isodate", registerISODateValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return fieldErrors(err)
	}

	return nil
}

// IsEmail reports whether value is a syntactically valid email address.
func IsEmail(value string) bool {
	return validate.Var(value, "email") == nil
}
