package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pragyan-chakra/hazard-watch/internal/dashboard"
)

// DashboardHandler serves the per-role aggregation views.
type DashboardHandler struct {
	Dashboards *dashboard.Service
}

func NewDashboardHandler(s *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{Dashboards: s}
}

// UserDashboard returns every report owned by the user in the path.
func (h *DashboardHandler) UserDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Dashboards.User(c.Param("userId")))
}

// AuthorityDashboard returns unreviewed and high-urgency reports. The
// optional jurisdiction query filters only the unreviewed list; minUrgency
// defaults to 7.
func (h *DashboardHandler) AuthorityDashboard(c echo.Context) error {
	minUrgency := float64(dashboard.DefaultMinUrgency)
	if raw := c.QueryParam("minUrgency"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid minUrgency value"})
		}
		minUrgency = parsed
	}
	return c.JSON(http.StatusOK, h.Dashboards.Authority(minUrgency, c.QueryParam("jurisdiction")))
}

// VolunteerDashboard returns assigned reports and available tasks for the
// volunteer in the path.
func (h *DashboardHandler) VolunteerDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Dashboards.Volunteer(c.Param("volunteerId")))
}
