package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// BadGateway returns a new Failure for errors raised by an upstream collaborator (database, broker, storage).
func BadGateway(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// StatusCoder is implemented by domain errors that know their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fields ValidationErrors
	if errors.As(err, &fields) {
		return http.StatusUnprocessableEntity
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var coder StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}

	return http.StatusInternalServerError
}

// FieldError is a user-correctable problem with a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidationErrors collects every FieldError found in one input, in check order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, len(v))
	for i, fieldErr := range v {
		messages[i] = fieldErr.Message
	}

	return strings.Join(messages, "; ")
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Has reports whether any error was recorded for field.
func (v ValidationErrors) Has(field string) bool {
	for _, fieldErr := range v {
		if fieldErr.Field == field {
			return true
		}
	}

	return false
}

// Err returns nil when no field error was recorded.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}

	return v
}
