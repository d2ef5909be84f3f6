package store

import (
	"sort"

	"github.com/google/uuid"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
)

// NewSocialPostParams enumerates the fields of an ingested social post.
// Defaults for absent optionals: trustScore 5, urgencyScore 3, geoTagged
// false, counters 0. Views stays nil for platforms that do not report it.
type NewSocialPostParams struct {
	Platform     model.Platform
	Username     string
	Description  string
	Media        *string
	Sentiment    model.Sentiment
	Latitude     *float64
	Longitude    *float64
	Location     *string
	GeoTagged    *bool
	TrustScore   *float64
	UrgencyScore *float64
	Likes        int
	Shares       int
	Comments     int
	Views        *int
}

// CreateSocialPost inserts a new post with a fresh identifier and a
// server-assigned creation timestamp.
func (s *Store) CreateSocialPost(p NewSocialPostParams) model.SocialPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := model.SocialPost{
		ID:           uuid.NewString(),
		Platform:     p.Platform,
		Username:     p.Username,
		Description:  p.Description,
		Media:        p.Media,
		Sentiment:    p.Sentiment,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Location:     p.Location,
		GeoTagged:    false,
		TrustScore:   5,
		UrgencyScore: 3,
		Likes:        p.Likes,
		Shares:       p.Shares,
		Comments:     p.Comments,
		Views:        p.Views,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if p.GeoTagged != nil {
		post.GeoTagged = *p.GeoTagged
	}
	if p.TrustScore != nil {
		post.TrustScore = *p.TrustScore
	}
	if p.UrgencyScore != nil {
		post.UrgencyScore = *p.UrgencyScore
	}

	s.posts[post.ID] = postEntry{post: post, seq: s.nextSeq()}
	return post
}

// GetSocialPost fetches one post by id.
func (s *Store) GetSocialPost(id string) (model.SocialPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.posts[id]
	if !ok {
		return model.SocialPost{}, ErrNotFound
	}
	return e.post, nil
}

// GetAllSocialPosts lists every post newest first, with the same
// insertion-order tie-break as the report feed.
func (s *Store) GetAllSocialPosts() []model.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPosts(func(model.SocialPost) bool { return true })
}

// GetSocialPostsByUrgency lists posts with urgencyScore >= minScore.
func (s *Store) GetSocialPostsByUrgency(minScore float64) []model.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPosts(func(p model.SocialPost) bool { return p.UrgencyScore >= minScore })
}

// GetSocialPostsByTrustScore lists posts with trustScore >= minScore.
func (s *Store) GetSocialPostsByTrustScore(minScore float64) []model.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPosts(func(p model.SocialPost) bool { return p.TrustScore >= minScore })
}

// GetGeoTaggedPosts lists posts that carry coordinates.
func (s *Store) GetGeoTaggedPosts() []model.SocialPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPosts(func(p model.SocialPost) bool { return p.GeoTagged })
}

// listPosts snapshots matching posts sorted newest first. Callers must
// hold at least a read lock.
func (s *Store) listPosts(match func(model.SocialPost) bool) []model.SocialPost {
	entries := make([]postEntry, 0, len(s.posts))
	for _, e := range s.posts {
		if match(e.post) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.post.CreatedAt.Equal(b.post.CreatedAt) {
			return a.post.CreatedAt.After(b.post.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]model.SocialPost, len(entries))
	for i, e := range entries {
		out[i] = e.post
	}
	return out
}
