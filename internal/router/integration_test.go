//go:build integration

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/legendary-swords/internal/config"
	"github.com/deppfellow/legendary-swords/internal/database"
	"github.com/deppfellow/legendary-swords/internal/handler"
	"github.com/deppfellow/legendary-swords/internal/repository"
	"github.com/deppfellow/legendary-swords/internal/server"
	"github.com/deppfellow/legendary-swords/internal/service"
	"github.com/deppfellow/legendary-swords/internal/testing/testdb"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *echo.Echo {
	pool := testdb.Setup(t)
	logger := zerolog.Nop()

	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
		DB:     &database.Database{Pool: pool, Tx: database.NewTxManager(pool)},
	}

	services := service.NewServices(repository.NewRepositories(s))
	return NewRouter(s, handler.NewHandlers(s, services))
}

func send(t *testing.T, api *echo.Echo, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

func TestAPI_SwordLifecycle(t *testing.T) {
	api := newAPI(t)

	status, created := send(t, api, http.MethodPost, "/sword", `{"type":"Katana","condition":"not_bad","value":"B","price":21421}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Katana", created["type"])
	assert.Equal(t, "not_bad", created["condition"])
	assert.Equal(t, "B", created["value"])
	assert.Equal(t, float64(21421), created["price"])
	assert.Equal(t, false, created["rented"])
	assert.Equal(t, false, created["on_sale"])
	assert.NotEmpty(t, created["uuid_insurance"])

	target := "/sword/" + created["uuid"].(string)

	status, got := send(t, api, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, got)

	status, updated := send(t, api, http.MethodPut, target, `{"price":100}`)
	require.Equal(t, http.StatusOK, status)
	want := map[string]any{}
	for k, v := range created {
		want[k] = v
	}
	want["price"] = float64(100)
	assert.Equal(t, want, updated)

	status, got = send(t, api, http.MethodGet, "/sword/insurance/"+created["uuid_insurance"].(string), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, updated, got)

	status, _ = send(t, api, http.MethodDelete, target, "")
	require.Equal(t, http.StatusOK, status)

	status, body := send(t, api, http.MethodGet, target, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Entity Sword with uuid "+created["uuid"].(string)+" was not found.", body["message"])
}

func TestAPI_DuplicateDocumentNumber(t *testing.T) {
	api := newAPI(t)
	document := uuid.NewString()

	status, first := send(t, api, http.MethodPost, "/person", `{"document_number":"`+document+`","name":"Miyamoto","surname":"Musashi"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := send(t, api, http.MethodPost, "/person", `{"document_number":"`+document+`","name":"Sasaki","surname":"Kojiro"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"message": "Could not create person."}, body)

	status, got := send(t, api, http.MethodGet, "/person/document/"+document, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, first, got)
}

func TestAPI_Status(t *testing.T) {
	api := newAPI(t)

	status, body := send(t, api, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body["checks"], "database")
}
