package store

import (
	"sort"

	"github.com/google/uuid"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
)

// NewHazardReportParams enumerates every field a submission may carry.
// Absent optionals take explicit defaults here rather than being coerced
// downstream: riskLevel medium, urgencyScore 5, trustScore 5, geoTagged
// true. Like/comment counters and the verified/reviewed flags are never
// caller-settable; they always start zeroed.
type NewHazardReportParams struct {
	UserID             string
	Username           string
	Description        string
	Media              *string
	MediaType          *model.MediaType
	Latitude           float64
	Longitude          float64
	Location           *string
	GeoTagged          *bool
	RiskLevel          *model.RiskLevel
	UrgencyScore       *float64
	TrustScore         *float64
	AssignedVolunteers []string
}

// CreateHazardReport inserts a new report with a fresh identifier and a
// server-assigned creation timestamp.
func (s *Store) CreateHazardReport(p NewHazardReportParams) model.HazardReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.HazardReport{
		ID:                 uuid.NewString(),
		UserID:             p.UserID,
		Username:           p.Username,
		Description:        p.Description,
		Media:              p.Media,
		MediaType:          p.MediaType,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		Location:           p.Location,
		GeoTagged:          true,
		Verified:           false,
		RiskLevel:          model.RiskMedium,
		UrgencyScore:       5,
		TrustScore:         5,
		Likes:              0,
		Comments:           0,
		AssignedVolunteers: dedupe(p.AssignedVolunteers),
		AuthorityReviewed:  false,
		CreatedAt:          s.clock.Now().UTC(),
	}
	if p.GeoTagged != nil {
		r.GeoTagged = *p.GeoTagged
	}
	if p.RiskLevel != nil {
		r.RiskLevel = *p.RiskLevel
	}
	if p.UrgencyScore != nil {
		r.UrgencyScore = *p.UrgencyScore
	}
	if p.TrustScore != nil {
		r.TrustScore = *p.TrustScore
	}

	s.reports[r.ID] = reportEntry{report: r, seq: s.nextSeq()}
	return cloneReport(r)
}

// GetHazardReport fetches one report by id.
func (s *Store) GetHazardReport(id string) (model.HazardReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.reports[id]
	if !ok {
		return model.HazardReport{}, ErrNotFound
	}
	return cloneReport(e.report), nil
}

// GetAllHazardReports lists every report newest first. The feed depends on
// this ordering; records sharing a timestamp fall back to insertion order
// with the later insert ranked first.
func (s *Store) GetAllHazardReports() []model.HazardReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReports(func(model.HazardReport) bool { return true })
}

// GetUnreviewedReports lists reports no authority has triaged yet.
func (s *Store) GetUnreviewedReports() []model.HazardReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReports(func(r model.HazardReport) bool { return !r.AuthorityReviewed })
}

// GetHazardReportsByUrgency lists reports with urgencyScore >= minScore.
// Range validation of minScore happens at the API boundary.
func (s *Store) GetHazardReportsByUrgency(minScore float64) []model.HazardReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReports(func(r model.HazardReport) bool { return r.UrgencyScore >= minScore })
}

// GetHazardReportsByTrustScore lists reports with trustScore >= minScore.
func (s *Store) GetHazardReportsByTrustScore(minScore float64) []model.HazardReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReports(func(r model.HazardReport) bool { return r.TrustScore >= minScore })
}

// GetReportsAssignedToVolunteer lists reports whose assignment set contains
// the given volunteer.
func (s *Store) GetReportsAssignedToVolunteer(volunteerID string) []model.HazardReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listReports(func(r model.HazardReport) bool {
		for _, v := range r.AssignedVolunteers {
			if v == volunteerID {
				return true
			}
		}
		return false
	})
}

// AssignVolunteerToReport adds the volunteer to the report's assignment
// set. Assigning the same volunteer twice is a no-op, so the set never
// holds duplicates.
func (s *Store) AssignVolunteerToReport(reportID, volunteerID string) (model.HazardReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.reports[reportID]
	if !ok {
		return model.HazardReport{}, ErrNotFound
	}
	assigned := false
	for _, v := range e.report.AssignedVolunteers {
		if v == volunteerID {
			assigned = true
			break
		}
	}
	if !assigned {
		e.report.AssignedVolunteers = append(e.report.AssignedVolunteers, volunteerID)
		s.reports[reportID] = e
	}
	return cloneReport(e.report), nil
}

// UpdateReportTrustScore overwrites the trust score. The caller must have
// validated score against the 1–10 range.
func (s *Store) UpdateReportTrustScore(reportID string, score float64) (model.HazardReport, error) {
	return s.mutateReport(reportID, func(r *model.HazardReport) { r.TrustScore = score })
}

// UpdateReportUrgencyScore overwrites the urgency score. The caller must
// have validated score against the 1–10 range.
func (s *Store) UpdateReportUrgencyScore(reportID string, score float64) (model.HazardReport, error) {
	return s.mutateReport(reportID, func(r *model.HazardReport) { r.UrgencyScore = score })
}

// MarkReportAsReviewed flags the report as triaged by an authority.
// Marking twice is idempotent.
func (s *Store) MarkReportAsReviewed(reportID string) (model.HazardReport, error) {
	return s.mutateReport(reportID, func(r *model.HazardReport) { r.AuthorityReviewed = true })
}

func (s *Store) mutateReport(id string, fn func(*model.HazardReport)) (model.HazardReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.reports[id]
	if !ok {
		return model.HazardReport{}, ErrNotFound
	}
	fn(&e.report)
	s.reports[id] = e
	return cloneReport(e.report), nil
}

// listReports snapshots matching reports sorted newest first. Callers must
// hold at least a read lock.
func (s *Store) listReports(match func(model.HazardReport) bool) []model.HazardReport {
	entries := make([]reportEntry, 0, len(s.reports))
	for _, e := range s.reports {
		if match(e.report) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.report.CreatedAt.Equal(b.report.CreatedAt) {
			return a.report.CreatedAt.After(b.report.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]model.HazardReport, len(entries))
	for i, e := range entries {
		out[i] = cloneReport(e.report)
	}
	return out
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
