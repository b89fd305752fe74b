package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/legendary-swords/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(nil).GlobalErrorHandler
	return e
}

func serve(e *echo.Echo, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestGlobalErrorHandler_RouteNotFound(t *testing.T) {
	e := newTestEcho()

	rec, body := serve(e, http.MethodGet, "/dragon")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"message": "Route not found"}, body)
}

func TestGlobalErrorHandler_MethodNotAllowed(t *testing.T) {
	e := newTestEcho()
	e.GET("/sword", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/person/:uuid", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec, body := serve(e, http.MethodPatch, "/sword")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method PATCH is not allowed for entity Sword", body["message"])

	rec, body = serve(e, http.MethodPost, "/person/0b6f5f4e-8a4b-4a55-9f0b-1f1f1f1f1f1f")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method POST is not allowed for entity Person", body["message"])
}

func TestGlobalErrorHandler_ApplicationError(t *testing.T) {
	e := newTestEcho()
	e.GET("/sword/:uuid", func(c echo.Context) error {
		return errs.NewEntityNotFoundError("Sword", c.Param("uuid"))
	})
	e.POST("/sword", func(c echo.Context) error {
		return errs.NewBadRequestError("Validation failed", nil, []errs.FieldError{
			{Field: "type", Error: "is required"},
		})
	})

	rec, body := serve(e, http.MethodGet, "/sword/abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"message": "Entity Sword with uuid abc was not found."}, body)

	rec, body = serve(e, http.MethodPost, "/sword")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, []any{map[string]any{"field": "type", "error": "is required"}}, body["errors"])
}

func TestGlobalErrorHandler_UnknownErrorIsHidden(t *testing.T) {
	e := newTestEcho()
	e.GET("/sword", func(c echo.Context) error {
		return errors.New("connection reset by peer")
	})

	rec, body := serve(e, http.MethodGet, "/sword")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"message": "Internal Server Error"}, body)
}

func TestGlobalErrorHandler_EscapedConstraintViolation(t *testing.T) {
	e := newTestEcho()
	e.PUT("/person/:uuid", func(c echo.Context) error {
		return &pgconn.PgError{
			Code:           "23505",
			TableName:      "persons",
			ConstraintName: "persons_document_number_key",
		}
	})

	rec, body := serve(e, http.MethodPut, "/person/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["message"])
}

func TestEntityFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/sword", "Sword"},
		{"/sword/insurance/123", "Sword"},
		{"/person/", "Person"},
		{"/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, entityFromPath(tt.path))
		})
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/status", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})
}
