package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/legendary-swords/internal/middleware"
	"github.com/deppfellow/legendary-swords/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const defaultHealthCheckTimeout = 5 * time.Second

// dependencyCheck probes one dependency. A failing check that is not
// required is reported but does not make the service unhealthy.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	env     string
	timeout time.Duration
	checks  []dependencyCheck
	nrApp   *newrelic.Application
}

// NewHealthHandler builds the checks enabled in the observability config.
// Redis is only probed when a client was configured.
func NewHealthHandler(s *server.Server) *HealthHandler {
	obs := s.Config.Observability

	h := &HealthHandler{
		env:     s.Config.Primary.Env,
		timeout: obs.HealthChecks.Timeout,
		nrApp:   s.LoggerService.GetApplication(),
	}
	if h.timeout <= 0 {
		h.timeout = defaultHealthCheckTimeout
	}

	if obs.HealthCheckEnabled("database") {
		h.checks = append(h.checks, dependencyCheck{
			name:     "database",
			required: true,
			ping:     s.DB.Pool.Ping,
		})
	}

	if obs.HealthCheckEnabled("redis") && s.Redis != nil {
		client := s.Redis
		h.checks = append(h.checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
		})
	}

	return h
}

// CheckHealth returns 200 when every required dependency answers and 503
// otherwise. The body lists each check with its response time.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]map[string]any, len(h.checks))
	healthy := true

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[check.name] = map[string]any{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if check.required {
				healthy = false
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordError(map[string]any{
				"check_type":       check.name,
				"operation":        "health_check",
				"error_type":       check.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[check.name] = map[string]any{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}

		logger.Debug().
			Str("check", check.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordError(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) recordError(attrs map[string]any) {
	if h.nrApp != nil {
		h.nrApp.RecordCustomEvent("HealthCheckError", attrs)
	}
}
