package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
	"github.com/pragyan-chakra/hazard-watch/internal/observability"
	"github.com/pragyan-chakra/hazard-watch/internal/store"
)

func newTestStore() *store.Store {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return store.New(clock, bcrypt.MinCost)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds an echo context for a JSON request. An empty body
// yields a bodyless request.
func newContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeReport(t *testing.T, rec *httptest.ResponseRecorder) model.HazardReport {
	t.Helper()
	var r model.HazardReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	return r
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validReportBody = `{
	"userId": "user-1",
	"username": "Alice Chen",
	"description": "High waves and strong currents near the pier",
	"latitude": 13.045,
	"longitude": 80.273,
	"location": "Marina Beach, Chennai",
	"riskLevel": "high",
	"likes": 99,
	"verified": true,
	"authorityReviewed": true
}`

func TestCreateReport(t *testing.T) {
	e := newEcho()

	t.Run("stores the submission and forces server-owned fields", func(t *testing.T) {
		metrics := observability.NewMetricsForTesting()
		h := NewReportHandler(newTestStore(), nil, metrics)

		c, rec := newContext(e, http.MethodPost, validReportBody)
		require.NoError(t, h.CreateReport(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		r := decodeReport(t, rec)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, model.RiskHigh, r.RiskLevel)
		assert.Equal(t, 0, r.Likes)
		assert.Equal(t, 0, r.Comments)
		assert.False(t, r.Verified)
		assert.False(t, r.AuthorityReviewed)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ReportsCreated))
	})

	t.Run("rejects a submission without a description", func(t *testing.T) {
		h := NewReportHandler(newTestStore(), nil, observability.NewMetricsForTesting())

		c, rec := newContext(e, http.MethodPost, `{"userId":"user-1","username":"Alice Chen","latitude":13.0,"longitude":80.2}`)
		require.NoError(t, h.CreateReport(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeMessage(t, rec)
		assert.Equal(t, "Invalid request data", body["message"])
		details, ok := body["errors"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, details)
		first := details[0].(map[string]any)
		assert.Equal(t, "description", first["field"])
	})

	t.Run("rejects an out-of-range urgency score", func(t *testing.T) {
		h := NewReportHandler(newTestStore(), nil, observability.NewMetricsForTesting())

		body := strings.Replace(validReportBody, `"riskLevel": "high",`, `"riskLevel": "high", "urgencyScore": 11,`, 1)
		c, rec := newContext(e, http.MethodPost, body)
		require.NoError(t, h.CreateReport(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		h := NewReportHandler(newTestStore(), nil, observability.NewMetricsForTesting())

		c, rec := newContext(e, http.MethodPost, `{"userId": `)
		require.NoError(t, h.CreateReport(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetReport(t *testing.T) {
	e := newEcho()
	st := newTestStore()
	h := NewReportHandler(st, nil, observability.NewMetricsForTesting())
	seeded := st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
	})

	t.Run("found", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.GetReport(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, seeded.ID, decodeReport(t, rec).ID)
	})

	t.Run("missing", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues("missing")
		require.NoError(t, h.GetReport(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Hazard report not found", decodeMessage(t, rec)["message"])
	})
}

func TestUpdateTrustScore(t *testing.T) {
	e := newEcho()
	st := newTestStore()
	h := NewReportHandler(st, nil, observability.NewMetricsForTesting())
	seeded := st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
	})

	t.Run("out-of-range score leaves the report unchanged", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPatch, `{"trustScore": 11}`)
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.UpdateTrustScore(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Trust score must be a number between 1-10", decodeMessage(t, rec)["message"])

		got, err := st.GetHazardReport(seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, 5.0, got.TrustScore)
	})

	t.Run("valid score persists", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPatch, `{"trustScore": 9}`)
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.UpdateTrustScore(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 9.0, decodeReport(t, rec).TrustScore)
	})

	t.Run("non-numeric score", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPatch, `{"trustScore": "high"}`)
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.UpdateTrustScore(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing report", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPatch, `{"trustScore": 9}`)
		c.SetParamNames("id")
		c.SetParamValues("missing")
		require.NoError(t, h.UpdateTrustScore(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Report not found", decodeMessage(t, rec)["message"])
	})
}

func TestUpdateUrgencyScore(t *testing.T) {
	e := newEcho()
	st := newTestStore()
	h := NewReportHandler(st, nil, observability.NewMetricsForTesting())
	seeded := st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
	})

	t.Run("below range", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPatch, `{"urgencyScore": 0}`)
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.UpdateUrgencyScore(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Urgency score must be a number between 1-10", decodeMessage(t, rec)["message"])
	})

	t.Run("valid score", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPatch, `{"urgencyScore": 7.5}`)
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.UpdateUrgencyScore(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7.5, decodeReport(t, rec).UrgencyScore)
	})
}

func TestListByUrgency(t *testing.T) {
	e := newEcho()
	st := newTestStore()
	h := NewReportHandler(st, nil, observability.NewMetricsForTesting())

	urgency := 9.0
	hot := st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
		UrgencyScore: &urgency,
	})
	st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
	})

	t.Run("filters by threshold", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "")
		c.SetParamNames("minScore")
		c.SetParamValues("7")
		require.NoError(t, h.ListByUrgency(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got []model.HazardReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, hot.ID, got[0].ID)
	})

	for _, raw := range []string{"0", "11", "abc"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			c, rec := newContext(e, http.MethodGet, "")
			c.SetParamNames("minScore")
			c.SetParamValues(raw)
			require.NoError(t, h.ListByUrgency(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid urgency score. Must be between 1-10", decodeMessage(t, rec)["message"])
		})
	}
}

func TestAssignVolunteer(t *testing.T) {
	e := newEcho()
	st := newTestStore()
	metrics := observability.NewMetricsForTesting()
	h := NewReportHandler(st, nil, metrics)
	seeded := st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
	})

	assign := func() *httptest.ResponseRecorder {
		c, rec := newContext(e, http.MethodPost, "")
		c.SetParamNames("id", "volunteerId")
		c.SetParamValues(seeded.ID, "user-2")
		require.NoError(t, h.AssignVolunteer(c))
		return rec
	}

	rec := assign()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user-2"}, decodeReport(t, rec).AssignedVolunteers)

	t.Run("repeat assignment is idempotent", func(t *testing.T) {
		rec := assign()
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"user-2"}, decodeReport(t, rec).AssignedVolunteers)
	})

	t.Run("missing report", func(t *testing.T) {
		c, rec := newContext(e, http.MethodPost, "")
		c.SetParamNames("id", "volunteerId")
		c.SetParamValues("missing", "user-2")
		require.NoError(t, h.AssignVolunteer(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMarkReviewed(t *testing.T) {
	e := newEcho()
	st := newTestStore()
	h := NewReportHandler(st, nil, observability.NewMetricsForTesting())
	seeded := st.CreateHazardReport(store.NewHazardReportParams{
		UserID: "user-1", Username: "Alice Chen", Description: "d", Latitude: 1, Longitude: 2,
	})

	for i := 0; i < 2; i++ {
		c, rec := newContext(e, http.MethodPatch, "")
		c.SetParamNames("id")
		c.SetParamValues(seeded.ID)
		require.NoError(t, h.MarkReviewed(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeReport(t, rec).AuthorityReviewed)
	}
}
