package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/legendary-swords/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds openapi.json and the docs UI.
const StaticDir = "static"

// OpenAPIHandler serves the interactive API docs. The page loads
// /static/openapi.json, so documentation changes need no rebuild.
type OpenAPIHandler struct {
	dir string
}

func NewOpenAPIHandler(_ *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{dir: StaticDir}
}

// ServeOpenAPIUI writes static/openapi.html uncached.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(filepath.Join(h.dir, "openapi.html"))
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}
	return nil
}
