package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
)

// Seed loads the fixed sample content the service starts with: three
// accounts (one per role), two hazard reports and three social posts.
// Identifiers are stable so the dashboards can be exercised without a
// registration flow; timestamps are relative to the injected clock.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), s.bcryptCost)
	if err != nil {
		return err
	}
	now := s.clock.Now().UTC()

	users := []model.User{
		{
			ID:              "user-1",
			Username:        "Alice Chen",
			PasswordHash:    string(hash),
			ProfilePic:      strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100"),
			Verified:        true,
			CommunityPoints: 245,
			Role:            model.RoleUser,
		},
		{
			ID:              "user-2",
			Username:        "Bob Kumar",
			PasswordHash:    string(hash),
			ProfilePic:      strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100"),
			CommunityPoints: 180,
			Role:            model.RoleVolunteer,
			OrganizationID:  strPtr("vols-india-1"),
			Jurisdiction:    strPtr("Tamil Nadu"),
		},
		{
			ID:              "user-3",
			Username:        "Captain Sarah Nair",
			PasswordHash:    string(hash),
			ProfilePic:      strPtr("https://images.unsplash.com/photo-1594736797933-d0a5ba1cdeed?w=100&h=100"),
			Verified:        true,
			CommunityPoints: 850,
			Role:            model.RoleAuthority,
			OrganizationID:  strPtr("coast-guard-india"),
			Jurisdiction:    strPtr("Western Coast"),
		},
	}
	for _, u := range users {
		s.users[u.ID] = u
	}

	reports := []model.HazardReport{
		{
			ID:                 "report-1",
			UserID:             "user-1",
			Username:           "Alice Chen",
			Description:        "High waves and strong currents observed near Marina Beach. Water level rising rapidly. Fishing boats advised to return to shore immediately. Local authorities have been notified.",
			Media:              strPtr("https://images.unsplash.com/photo-1439066615861-d1af74d74000?w=800&h=600"),
			MediaType:          mediaPtr(model.MediaImage),
			Latitude:           13.045,
			Longitude:          80.273,
			Location:           strPtr("Marina Beach, Chennai"),
			GeoTagged:          true,
			Verified:           true,
			RiskLevel:          model.RiskHigh,
			UrgencyScore:       8.5,
			TrustScore:         9.2,
			Likes:              24,
			Comments:           8,
			AssignedVolunteers: []string{"user-2"},
			AuthorityReviewed:  true,
			CreatedAt:          now.Add(-2 * time.Hour),
		},
		{
			ID:                 "report-2",
			UserID:             "user-2",
			Username:           "Bob Kumar",
			Description:        "Coastal flooding reported in low-lying areas near Kochi port. Water entering residential areas. Emergency services dispatched. Residents advised to move to higher ground.",
			Media:              strPtr("https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=800&h=600"),
			MediaType:          mediaPtr(model.MediaImage),
			Latitude:           9.931,
			Longitude:          76.267,
			Location:           strPtr("Fort Kochi, Kerala"),
			GeoTagged:          true,
			RiskLevel:          model.RiskCritical,
			UrgencyScore:       9.8,
			TrustScore:         7.1,
			Likes:              18,
			Comments:           12,
			AssignedVolunteers: []string{},
			CreatedAt:          now.Add(-4 * time.Hour),
		},
	}
	for _, r := range reports {
		s.reports[r.ID] = reportEntry{report: r, seq: s.nextSeq()}
	}

	posts := []model.SocialPost{
		{
			ID:           "social-1",
			Platform:     model.PlatformTwitter,
			Username:     "@OceanWatcher",
			Description:  "TSUNAMI WARNING: Bay of Bengal - Magnitude 7.2 earthquake detected. Coastal areas from Tamil Nadu to Andhra Pradesh should prepare for evacuation if needed. Stay tuned for official updates. #TsunamiAlert #BayOfBengal",
			Media:        strPtr("https://images.unsplash.com/photo-1614730321146-b6fa6a46bcb4?w=600&h=300"),
			Sentiment:    model.SentimentAlert,
			Latitude:     f64Ptr(13.0827),
			Longitude:    f64Ptr(80.2707),
			Location:     strPtr("Bay of Bengal, Tamil Nadu"),
			GeoTagged:    true,
			TrustScore:   9.5,
			UrgencyScore: 10.0,
			Likes:        1200,
			Shares:       856,
			Comments:     234,
			CreatedAt:    now.Add(-1 * time.Hour),
		},
		{
			ID:           "social-2",
			Platform:     model.PlatformYouTube,
			Username:     "Marine Weather Service",
			Description:  "Weekly Ocean Conditions Report - Indian Ocean | Storm systems tracking, wave heights, and fishing safety guidelines for coastal regions",
			Media:        strPtr("https://images.unsplash.com/photo-1551244072-5d12893278ab?w=600&h=300"),
			Sentiment:    model.SentimentNeutral,
			TrustScore:   8.7,
			UrgencyScore: 4.0,
			Likes:        892,
			Comments:     67,
			Views:        intPtr(15600),
			CreatedAt:    now.Add(-3 * time.Hour),
		},
		{
			ID:           "social-3",
			Platform:     model.PlatformReddit,
			Username:     "u/MarineBiologist",
			Description:  "Amazing recovery of coral reefs near Lakshadweep! Water quality has improved significantly over the past year. Great news for marine biodiversity and fishing communities.",
			Media:        strPtr("https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=600&h=300"),
			Sentiment:    model.SentimentPositive,
			Latitude:     f64Ptr(10.5667),
			Longitude:    f64Ptr(72.6417),
			Location:     strPtr("Lakshadweep Islands"),
			GeoTagged:    true,
			TrustScore:   7.8,
			UrgencyScore: 2.0,
			Likes:        847,
			Shares:       23,
			Comments:     156,
			CreatedAt:    now.Add(-5 * time.Hour),
		},
	}
	for _, p := range posts {
		s.posts[p.ID] = postEntry{post: p, seq: s.nextSeq()}
	}

	return nil
}

func strPtr(s string) *string                     { return &s }
func f64Ptr(f float64) *float64                   { return &f }
func intPtr(n int) *int                           { return &n }
func mediaPtr(m model.MediaType) *model.MediaType { return &m }
