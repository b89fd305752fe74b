// Package errs defines the errors returned to API clients.
//
// Every failure leaves the service as the same JSON shape:
//
//	{"message": "Entity Sword with uuid ... was not found."}
//	{"message": "Validation failed", "errors": [{"field": "type", "error": "is required"}]}
//
// Status and machine code travel with the error but stay out of the body.
package errs

import "strings"

// FieldError represents a field-level validation error.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type the global error handler knows how to render.
type HTTPError struct {
	Code    string       `json:"-"`
	Message string       `json:"message"`
	Status  int          `json:"-"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
