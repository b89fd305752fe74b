package errs

import (
	"fmt"
	"net/http"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 error. code overrides the default
// BAD_REQUEST machine code when non-nil.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message)
	if code != nil {
		err.Code = *code
	}
	err.Errors = errors
	return err
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string, code *string) *HTTPError {
	err := newHTTPError(http.StatusNotFound, message)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewEntityNotFoundError is the 404 returned when a lookup finds nothing.
func NewEntityNotFoundError(entity string, id any) *HTTPError {
	code := MakeUpperCaseWithUnderscores(entity) + "_NOT_FOUND"
	return NewNotFoundError(fmt.Sprintf("Entity %s with uuid %v was not found.", entity, id), &code)
}

// NewMethodNotAllowedError is returned for a known entity path hit with an
// unsupported method.
func NewMethodNotAllowedError(method, entity string) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed,
		fmt.Sprintf("Method %s is not allowed for entity %s", method, entity))
}

// NewInternalServerError hides the cause behind the generic status text.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// NewTooManyRequestsError is returned when a client exceeds the rate limit.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "Too many requests.")
}
