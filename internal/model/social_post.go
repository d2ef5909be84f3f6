package model

import "time"

// Platform names the social network a post was ingested from.
type Platform string

const (
	PlatformTwitter Platform = "twitter"
	PlatformYouTube Platform = "youtube"
	PlatformReddit  Platform = "reddit"
	PlatformOther   Platform = "other"
)

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformYouTube, PlatformReddit, PlatformOther:
		return true
	}
	return false
}

// Sentiment is the coarse content classification of a social post.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentAlert    Sentiment = "alert"
)

// Valid reports whether s is a known sentiment.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentAlert:
		return true
	}
	return false
}

// SocialPost is a hazard-relevant post mirrored from a social platform.
// Posts are read-mostly: the ingestion endpoint exists but nothing in the
// service produces non-sample data. Views is nullable because not every
// platform reports it.
type SocialPost struct {
	ID           string    `json:"id"`
	Platform     Platform  `json:"platform"`
	Username     string    `json:"username"`
	Description  string    `json:"description"`
	Media        *string   `json:"media"`
	Sentiment    Sentiment `json:"sentiment"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Location     *string   `json:"location"`
	GeoTagged    bool      `json:"geoTagged"`
	TrustScore   float64   `json:"trustScore"`
	UrgencyScore float64   `json:"urgencyScore"`
	Likes        int       `json:"likes"`
	Shares       int       `json:"shares"`
	Comments     int       `json:"comments"`
	Views        *int      `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}
