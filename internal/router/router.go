// Package router defines how HTTP routes are registered for the API. All
// application routes live under /api; the Prometheus endpoint is mounted
// at the root the way the rest of the fleet exposes it.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pragyan-chakra/hazard-watch/internal/handler"
	"github.com/pragyan-chakra/hazard-watch/internal/middleware"
)

// RegisterSystem registers the health and metrics endpoints. Neither takes
// middleware: monitors must reach them even when rate limiting is active.
func RegisterSystem(e *echo.Echo) {
	e.GET("/api/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterReports registers the hazard-report endpoints. The full feed is
// the hottest read path, so it takes the response-cache middleware; every
// mutation route bumps the cache generation on success so a created or
// updated report is visible to the very next feed read.
func RegisterReports(e *echo.Echo, h *handler.ReportHandler, cache *middleware.ResponseCache) {
	g := e.Group("/api")
	invalidate := cache.InvalidateOnSuccess()

	g.GET("/hazard-reports", h.ListReports, cache.Middleware())
	g.POST("/hazard-reports", h.CreateReport, invalidate)
	g.GET("/hazard-reports/urgency/:minScore", h.ListByUrgency)
	g.GET("/hazard-reports/trust/:minScore", h.ListByTrust)
	g.GET("/hazard-reports/:id", h.GetReport)
	g.PATCH("/hazard-reports/:id/trust-score", h.UpdateTrustScore, invalidate)
	g.PATCH("/hazard-reports/:id/urgency-score", h.UpdateUrgencyScore, invalidate)
	g.POST("/hazard-reports/:id/mark-reviewed", h.MarkReviewed, invalidate)
	g.POST("/hazard-reports/:id/assign/:volunteerId", h.AssignVolunteer, invalidate)
}

// RegisterSocial registers the social-post endpoints.
func RegisterSocial(e *echo.Echo, h *handler.SocialHandler, cache *middleware.ResponseCache) {
	g := e.Group("/api")

	g.GET("/social-posts", h.ListPosts, cache.Middleware())
	g.POST("/social-posts", h.CreatePost, cache.InvalidateOnSuccess())
	g.GET("/social-posts/geo-tagged", h.ListGeoTagged)
	g.GET("/social-posts/urgency/:minScore", h.ListByUrgency)
	g.GET("/social-posts/trust/:minScore", h.ListByTrust)
	g.GET("/social-posts/:id", h.GetPost)
}

// RegisterUsers registers the user profile endpoints.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler) {
	g := e.Group("/api")

	g.GET("/users/role/:role", h.ListByRole)
	g.GET("/users/:id", h.GetUser)
}

// RegisterDashboards registers the per-role aggregation endpoints. These
// are recomputed per request and deliberately uncached: a stale triage
// view is worse than the recompute cost.
func RegisterDashboards(e *echo.Echo, h *handler.DashboardHandler) {
	g := e.Group("/api/dashboard")

	g.GET("/user/:userId", h.UserDashboard)
	g.GET("/authority", h.AuthorityDashboard)
	g.GET("/volunteer/:volunteerId", h.VolunteerDashboard)
}
