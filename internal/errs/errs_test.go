package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_JSONBody(t *testing.T) {
	body, err := json.Marshal(NewEntityNotFoundError("Sword", "4f1b"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Entity Sword with uuid 4f1b was not found."}`, string(body))

	withFields, err := json.Marshal(NewBadRequestError("Validation failed", nil, []FieldError{{Field: "type", Error: "is required"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Validation failed","errors":[{"field":"type","error":"is required"}]}`, string(withFields))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err     *HTTPError
		status  int
		code    string
		message string
	}{
		{NewEntityNotFoundError("Person", 7), http.StatusNotFound, "PERSON_NOT_FOUND", "Entity Person with uuid 7 was not found."},
		{NewMethodNotAllowedError("PATCH", "Sword"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method PATCH is not allowed for entity Sword"},
		{NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests."},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
		{NewBadRequestError("Could not create sword.", nil, nil), http.StatusBadRequest, "BAD_REQUEST", "Could not create sword."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestHTTPError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("gone", nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "gone", httpErr.Message)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
