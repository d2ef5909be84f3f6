// Package queue defines the hazard event payloads exchanged over the
// message broker and the background consumer that records them.
package queue

// Event kinds published to the hazard.events queue.
const (
	KindReportCreated     = "report.created"
	KindReportReviewed    = "report.reviewed"
	KindVolunteerAssigned = "volunteer.assigned"
)

// HazardEvent is published when a report is created, reviewed or gains a
// volunteer. It carries enough context for downstream consumers to log or
// notify without querying the API.
type HazardEvent struct {
	Kind         string  `json:"kind"`
	ReportID     string  `json:"report_id"`
	UserID       string  `json:"user_id"`
	Location     *string `json:"location,omitempty"`
	RiskLevel    string  `json:"risk_level"`
	UrgencyScore float64 `json:"urgency_score"`
	VolunteerID  string  `json:"volunteer_id,omitempty"`
	OccurredAt   string  `json:"occurred_at"`
}
