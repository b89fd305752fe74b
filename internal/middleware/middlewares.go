// Package middleware holds the echo middleware shared by every route:
// request ids, request-scoped logging, New Relic tracing, rate limiting,
// CORS, secure headers, panic recovery and the global error handler.
package middleware

import (
	"github.com/deppfellow/legendary-swords/internal/server"
)

// Middlewares groups the middleware components so the router builds them
// once.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

// NewMiddlewares wires every component to s. Tracing degrades into a no-op
// when New Relic is not configured.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
