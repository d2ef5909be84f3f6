package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
)

func minimalPost() NewSocialPostParams {
	return NewSocialPostParams{
		Platform:    model.PlatformTwitter,
		Username:    "@OceanWatcher",
		Description: "Unusual tide levels reported along the coast",
		Sentiment:   model.SentimentNeutral,
	}
}

func TestCreateSocialPost(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		s, _ := newTestStore()
		p := s.CreateSocialPost(minimalPost())

		assert.NotEmpty(t, p.ID)
		assert.False(t, p.GeoTagged)
		assert.Equal(t, 5.0, p.TrustScore)
		assert.Equal(t, 3.0, p.UrgencyScore)
		assert.Nil(t, p.Views)
		assert.Equal(t, testStart, p.CreatedAt)
	})

	t.Run("honors explicit optionals", func(t *testing.T) {
		s, _ := newTestStore()
		params := minimalPost()
		geo := true
		trust := 9.5
		urgency := 10.0
		views := 15600
		params.GeoTagged = &geo
		params.TrustScore = &trust
		params.UrgencyScore = &urgency
		params.Views = &views

		p := s.CreateSocialPost(params)
		assert.True(t, p.GeoTagged)
		assert.Equal(t, 9.5, p.TrustScore)
		assert.Equal(t, 10.0, p.UrgencyScore)
		require.NotNil(t, p.Views)
		assert.Equal(t, 15600, *p.Views)
	})
}

func TestGetSocialPost(t *testing.T) {
	s, _ := newTestStore()
	p := s.CreateSocialPost(minimalPost())

	got, err := s.GetSocialPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = s.GetSocialPost("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllSocialPostsOrdering(t *testing.T) {
	s, clock := newTestStore()

	a := s.CreateSocialPost(minimalPost())
	clock.Advance(time.Minute)
	b := s.CreateSocialPost(minimalPost())
	c := s.CreateSocialPost(minimalPost())

	got := s.GetAllSocialPosts()
	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, a.ID, got[2].ID)
}

func TestSocialPostFilters(t *testing.T) {
	s, _ := newTestStore()

	quiet := s.CreateSocialPost(minimalPost())

	loudParams := minimalPost()
	geo := true
	trust := 8.7
	urgency := 9.0
	loudParams.GeoTagged = &geo
	loudParams.TrustScore = &trust
	loudParams.UrgencyScore = &urgency
	loud := s.CreateSocialPost(loudParams)

	t.Run("by urgency", func(t *testing.T) {
		got := s.GetSocialPostsByUrgency(7)
		require.Len(t, got, 1)
		assert.Equal(t, loud.ID, got[0].ID)
	})

	t.Run("by trust", func(t *testing.T) {
		got := s.GetSocialPostsByTrustScore(6)
		require.Len(t, got, 1)
		assert.Equal(t, loud.ID, got[0].ID)
	})

	t.Run("geo tagged", func(t *testing.T) {
		got := s.GetGeoTaggedPosts()
		require.Len(t, got, 1)
		assert.Equal(t, loud.ID, got[0].ID)
		assert.NotEqual(t, quiet.ID, got[0].ID)
	})
}
