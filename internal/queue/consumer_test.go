package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessage(t *testing.T) {
	t.Chdir(t.TempDir())

	location := "Marina Beach, Chennai"
	ev := HazardEvent{
		Kind:         KindReportCreated,
		ReportID:     "report-1",
		UserID:       "user-1",
		Location:     &location,
		RiskLevel:    "high",
		UrgencyScore: 8.5,
		OccurredAt:   "2025-06-01T12:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)
	require.NoError(t, handleMessage(body))

	logPath := filepath.Join("logs", "hazard-events.log")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, KindReportCreated)
	assert.Contains(t, line, "report_id=report-1")
	assert.Contains(t, line, `location="Marina Beach, Chennai"`)
	assert.Contains(t, line, "risk=high")
	assert.NotContains(t, line, "volunteer_id")

	t.Run("assignment events carry the volunteer", func(t *testing.T) {
		ev.Kind = KindVolunteerAssigned
		ev.VolunteerID = "user-2"
		body, err := json.Marshal(ev)
		require.NoError(t, err)
		require.NoError(t, handleMessage(body))

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "volunteer_id=user-2")
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		assert.Error(t, handleMessage([]byte(`{"kind":`)))
	})
}
