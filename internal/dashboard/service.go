// Package dashboard derives the per-role views served by the dashboard
// endpoints. The service is stateless: every view is recomputed from store
// queries on each call and nothing is persisted.
package dashboard

import (
	"strings"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
	"github.com/pragyan-chakra/hazard-watch/internal/store"
)

// DefaultMinUrgency is the urgency threshold applied to the authority
// dashboard when the caller does not supply one.
const DefaultMinUrgency = 7

// AvailableTaskLimit caps the number of available tasks returned to a
// volunteer. The total count is reported uncapped alongside the slice.
const AvailableTaskLimit = 10

// Service computes dashboard views over the store.
type Service struct {
	store *store.Store
}

// New returns a Service reading from the given store.
func New(s *store.Store) *Service {
	return &Service{store: s}
}

// AuthorityView is the triage overview for authority accounts.
type AuthorityView struct {
	UnreviewedReports  []model.HazardReport `json:"unreviewedReports"`
	HighUrgencyReports []model.HazardReport `json:"highUrgencyReports"`
	TotalUnreviewed    int                  `json:"totalUnreviewed"`
	TotalHighUrgency   int                  `json:"totalHighUrgency"`
}

// Authority builds the authority dashboard. A non-empty jurisdiction
// filters the unreviewed list by case-insensitive substring match against
// each report's location. The high-urgency list is a separate facet and is
// never jurisdiction-filtered.
func (s *Service) Authority(minUrgency float64, jurisdiction string) AuthorityView {
	unreviewed := s.store.GetUnreviewedReports()
	highUrgency := s.store.GetHazardReportsByUrgency(minUrgency)

	if jurisdiction != "" {
		needle := strings.ToLower(jurisdiction)
		filtered := make([]model.HazardReport, 0, len(unreviewed))
		for _, r := range unreviewed {
			if r.Location != nil && strings.Contains(strings.ToLower(*r.Location), needle) {
				filtered = append(filtered, r)
			}
		}
		unreviewed = filtered
	}

	return AuthorityView{
		UnreviewedReports:  unreviewed,
		HighUrgencyReports: highUrgency,
		TotalUnreviewed:    len(unreviewed),
		TotalHighUrgency:   len(highUrgency),
	}
}

// VolunteerView is the task overview for volunteer accounts.
type VolunteerView struct {
	AssignedReports []model.HazardReport `json:"assignedReports"`
	AvailableTasks  []model.HazardReport `json:"availableTasks"`
	TotalAssigned   int                  `json:"totalAssigned"`
	TotalAvailable  int                  `json:"totalAvailable"`
}

// Volunteer builds the volunteer dashboard. Available tasks are unreviewed
// reports nobody has claimed yet; the returned slice is capped at
// AvailableTaskLimit while TotalAvailable reflects the uncapped count.
func (s *Service) Volunteer(volunteerID string) VolunteerView {
	assigned := s.store.GetReportsAssignedToVolunteer(volunteerID)

	available := make([]model.HazardReport, 0)
	for _, r := range s.store.GetUnreviewedReports() {
		if len(r.AssignedVolunteers) == 0 {
			available = append(available, r)
		}
	}

	total := len(available)
	if len(available) > AvailableTaskLimit {
		available = available[:AvailableTaskLimit]
	}

	return VolunteerView{
		AssignedReports: assigned,
		AvailableTasks:  available,
		TotalAssigned:   len(assigned),
		TotalAvailable:  total,
	}
}

// User lists every report owned by the given user, newest first. There is
// no cap and no further filtering.
func (s *Service) User(userID string) []model.HazardReport {
	reports := s.store.GetAllHazardReports()
	out := make([]model.HazardReport, 0, len(reports))
	for _, r := range reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
