package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-insights/internal/api/http/handlers"
	"github.com/spec-kit/ticket-insights/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Recommendations *handlers.RecommendationsHandler
	AuthMiddleware  *auth.Middleware
	RateLimit       fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	group := app.Group("/workspaces/:workspace_id/recommendations")
	if cfg.AuthMiddleware != nil {
		group.Use(cfg.AuthMiddleware.Handle)
	}
	if cfg.RateLimit != nil {
		group.Use(cfg.RateLimit)
	}

	group.Get("/assignees", cfg.Recommendations.RecommendAssignees)
	group.Get("/priority", cfg.Recommendations.RecommendPriority)
	group.Get("/response-time", cfg.Recommendations.EstimateResponseTime)
	group.Get("/similar", cfg.Recommendations.FindSimilar)
}
