// Package router builds the echo instance: the middleware chain, the
// global error handler and every route.
package router

import (
	"github.com/deppfellow/legendary-swords/internal/handler"
	"github.com/deppfellow/legendary-swords/internal/middleware"
	"github.com/deppfellow/legendary-swords/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter wires middleware and routes.
//
// Order matters: the request id must exist before the context enhancer
// builds the request logger, and the New Relic transaction must exist
// before tracing attributes and trace ids can be attached.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(echoMiddleware.RemoveTrailingSlash())

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.RateLimiter())
	}

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerSwordRoutes(router, h.Swords)
	registerPersonRoutes(router, h.Persons)

	return router
}
