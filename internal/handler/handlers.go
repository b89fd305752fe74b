// Package handler is the HTTP layer.
//
// Handlers bind and validate requests, call the services inside a
// per-request session and translate absent results into 404s and refused
// creations into 400s. Everything else is left to the global error handler.
package handler

import (
	"github.com/deppfellow/legendary-swords/internal/server"
	"github.com/deppfellow/legendary-swords/internal/service"
)

// Handlers groups all HTTP handlers for the router.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Swords  *SwordHandler
	Persons *PersonHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	base := NewHandler(s)

	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Swords:  NewSwordHandler(base, services.Swords),
		Persons: NewPersonHandler(base, services.Persons),
	}
}
