package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
	"github.com/pragyan-chakra/hazard-watch/internal/observability"
	"github.com/pragyan-chakra/hazard-watch/internal/queue"
	"github.com/pragyan-chakra/hazard-watch/internal/store"
)

// ReportHandler bundles dependencies for the hazard-report endpoints.
// Events may be nil, in which case publishing is a no-op.
type ReportHandler struct {
	Store   *store.Store
	Events  *queue.Publisher
	Metrics *observability.Metrics
}

func NewReportHandler(s *store.Store, events *queue.Publisher, m *observability.Metrics) *ReportHandler {
	return &ReportHandler{Store: s, Events: events, Metrics: m}
}

// ----- DTOs -----

type createReportReq struct {
	UserID             string   `json:"userId" validate:"required"`
	Username           string   `json:"username" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	Media              *string  `json:"media"`
	MediaType          *string  `json:"mediaType" validate:"omitempty,oneof=image video"`
	Latitude           *float64 `json:"latitude" validate:"required"`
	Longitude          *float64 `json:"longitude" validate:"required"`
	Location           *string  `json:"location"`
	GeoTagged          *bool    `json:"geoTagged"`
	RiskLevel          *string  `json:"riskLevel" validate:"omitempty,oneof=low medium high critical"`
	UrgencyScore       *float64 `json:"urgencyScore" validate:"omitempty,gte=1,lte=10"`
	TrustScore         *float64 `json:"trustScore" validate:"omitempty,gte=1,lte=10"`
	AssignedVolunteers []string `json:"assignedVolunteers"`
}

type trustScoreReq struct {
	TrustScore *float64 `json:"trustScore"`
}

type urgencyScoreReq struct {
	UrgencyScore *float64 `json:"urgencyScore"`
}

// CreateReport accepts a citizen submission and returns the stored record.
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req createReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
			"errors":  validationDetails(err),
		})
	}

	report := h.Store.CreateHazardReport(store.NewHazardReportParams{
		UserID:             req.UserID,
		Username:           req.Username,
		Description:        req.Description,
		Media:              req.Media,
		MediaType:          mediaTypePtr(req.MediaType),
		Latitude:           *req.Latitude,
		Longitude:          *req.Longitude,
		Location:           req.Location,
		GeoTagged:          req.GeoTagged,
		RiskLevel:          riskLevelPtr(req.RiskLevel),
		UrgencyScore:       req.UrgencyScore,
		TrustScore:         req.TrustScore,
		AssignedVolunteers: req.AssignedVolunteers,
	})
	h.Metrics.ReportsCreated.Inc()
	h.publish(c, queue.KindReportCreated, report, "")
	return c.JSON(http.StatusCreated, report)
}

// ListReports returns every report, newest first.
func (h *ReportHandler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetAllHazardReports())
}

// GetReport returns a single report by id.
func (h *ReportHandler) GetReport(c echo.Context) error {
	report, err := h.Store.GetHazardReport(c.Param("id"))
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Hazard report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch hazard report"})
	}
	return c.JSON(http.StatusOK, report)
}

// ListByUrgency returns reports at or above the urgency score in the path.
func (h *ReportHandler) ListByUrgency(c echo.Context) error {
	minScore, ok := parseMinScore(c.Param("minScore"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid urgency score. Must be between 1-10"})
	}
	return c.JSON(http.StatusOK, h.Store.GetHazardReportsByUrgency(minScore))
}

// ListByTrust returns reports at or above the trust score in the path.
func (h *ReportHandler) ListByTrust(c echo.Context) error {
	minScore, ok := parseMinScore(c.Param("minScore"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid trust score. Must be between 1-10"})
	}
	return c.JSON(http.StatusOK, h.Store.GetHazardReportsByTrustScore(minScore))
}

// UpdateTrustScore overwrites a report's trust score.
func (h *ReportHandler) UpdateTrustScore(c echo.Context) error {
	var req trustScoreReq
	if err := c.Bind(&req); err != nil || !scoreInRange(req.TrustScore) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Trust score must be a number between 1-10"})
	}
	report, err := h.Store.UpdateReportTrustScore(c.Param("id"), *req.TrustScore)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update trust score"})
	}
	return c.JSON(http.StatusOK, report)
}

// UpdateUrgencyScore overwrites a report's urgency score.
func (h *ReportHandler) UpdateUrgencyScore(c echo.Context) error {
	var req urgencyScoreReq
	if err := c.Bind(&req); err != nil || !scoreInRange(req.UrgencyScore) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Urgency score must be a number between 1-10"})
	}
	report, err := h.Store.UpdateReportUrgencyScore(c.Param("id"), *req.UrgencyScore)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update urgency score"})
	}
	return c.JSON(http.StatusOK, report)
}

// MarkReviewed flags a report as triaged by an authority.
func (h *ReportHandler) MarkReviewed(c echo.Context) error {
	report, err := h.Store.MarkReportAsReviewed(c.Param("id"))
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to mark report as reviewed"})
	}
	h.Metrics.ReportsReviewed.Inc()
	h.publish(c, queue.KindReportReviewed, report, "")
	return c.JSON(http.StatusOK, report)
}

// AssignVolunteer adds a volunteer to a report's assignment set.
func (h *ReportHandler) AssignVolunteer(c echo.Context) error {
	volunteerID := c.Param("volunteerId")
	report, err := h.Store.AssignVolunteerToReport(c.Param("id"), volunteerID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to assign volunteer"})
	}
	h.Metrics.VolunteerAssignments.Inc()
	h.publish(c, queue.KindVolunteerAssigned, report, volunteerID)
	return c.JSON(http.StatusOK, report)
}

// publish emits a hazard event best-effort; failures are logged by the
// publisher and never affect the response.
func (h *ReportHandler) publish(c echo.Context, kind string, r model.HazardReport, volunteerID string) {
	_ = h.Events.Publish(c.Request().Context(), queue.HazardEvent{
		Kind:         kind,
		ReportID:     r.ID,
		UserID:       r.UserID,
		Location:     r.Location,
		RiskLevel:    string(r.RiskLevel),
		UrgencyScore: r.UrgencyScore,
		VolunteerID:  volunteerID,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// parseMinScore parses a 1–10 score from a path parameter.
func parseMinScore(raw string) (float64, bool) {
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || score < 1 || score > 10 {
		return 0, false
	}
	return score, true
}

func scoreInRange(score *float64) bool {
	return score != nil && !math.IsNaN(*score) && *score >= 1 && *score <= 10
}

func mediaTypePtr(s *string) *model.MediaType {
	if s == nil {
		return nil
	}
	m := model.MediaType(*s)
	return &m
}

func riskLevelPtr(s *string) *model.RiskLevel {
	if s == nil {
		return nil
	}
	l := model.RiskLevel(*s)
	return &l
}

// notFound reports whether err is the store's missing-record sentinel.
func notFound(err error) bool { return errors.Is(err, store.ErrNotFound) }
