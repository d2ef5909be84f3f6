package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
	"github.com/pragyan-chakra/hazard-watch/internal/observability"
	"github.com/pragyan-chakra/hazard-watch/internal/store"
)

// SocialHandler bundles dependencies for the social-post endpoints. The
// ingestion path is fully validated even though nothing in the service
// produces non-sample data yet.
type SocialHandler struct {
	Store   *store.Store
	Metrics *observability.Metrics
}

func NewSocialHandler(s *store.Store, m *observability.Metrics) *SocialHandler {
	return &SocialHandler{Store: s, Metrics: m}
}

type createSocialPostReq struct {
	Platform     string   `json:"platform" validate:"required,oneof=twitter youtube reddit other"`
	Username     string   `json:"username" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Media        *string  `json:"media"`
	Sentiment    string   `json:"sentiment" validate:"required,oneof=positive neutral negative alert"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Location     *string  `json:"location"`
	GeoTagged    *bool    `json:"geoTagged"`
	TrustScore   *float64 `json:"trustScore" validate:"omitempty,gte=1,lte=10"`
	UrgencyScore *float64 `json:"urgencyScore" validate:"omitempty,gte=1,lte=10"`
	Likes        int      `json:"likes" validate:"gte=0"`
	Shares       int      `json:"shares" validate:"gte=0"`
	Comments     int      `json:"comments" validate:"gte=0"`
	Views        *int     `json:"views" validate:"omitempty,gte=0"`
}

// CreatePost ingests a social post and returns the stored record.
func (h *SocialHandler) CreatePost(c echo.Context) error {
	var req createSocialPostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request data",
			"errors":  validationDetails(err),
		})
	}

	post := h.Store.CreateSocialPost(store.NewSocialPostParams{
		Platform:     model.Platform(req.Platform),
		Username:     req.Username,
		Description:  req.Description,
		Media:        req.Media,
		Sentiment:    model.Sentiment(req.Sentiment),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Location:     req.Location,
		GeoTagged:    req.GeoTagged,
		TrustScore:   req.TrustScore,
		UrgencyScore: req.UrgencyScore,
		Likes:        req.Likes,
		Shares:       req.Shares,
		Comments:     req.Comments,
		Views:        req.Views,
	})
	h.Metrics.SocialPostsCreated.Inc()
	return c.JSON(http.StatusCreated, post)
}

// ListPosts returns every social post, newest first.
func (h *SocialHandler) ListPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetAllSocialPosts())
}

// GetPost returns a single social post by id.
func (h *SocialHandler) GetPost(c echo.Context) error {
	post, err := h.Store.GetSocialPost(c.Param("id"))
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Social post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch social post"})
	}
	return c.JSON(http.StatusOK, post)
}

// ListGeoTagged returns posts that carry coordinates.
func (h *SocialHandler) ListGeoTagged(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetGeoTaggedPosts())
}

// ListByUrgency returns posts at or above the urgency score in the path.
func (h *SocialHandler) ListByUrgency(c echo.Context) error {
	minScore, ok := parseMinScore(c.Param("minScore"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid urgency score. Must be between 1-10"})
	}
	return c.JSON(http.StatusOK, h.Store.GetSocialPostsByUrgency(minScore))
}

// ListByTrust returns posts at or above the trust score in the path.
func (h *SocialHandler) ListByTrust(c echo.Context) error {
	minScore, ok := parseMinScore(c.Param("minScore"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid trust score. Must be between 1-10"})
	}
	return c.JSON(http.StatusOK, h.Store.GetSocialPostsByTrustScore(minScore))
}
