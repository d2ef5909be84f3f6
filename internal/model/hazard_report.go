package model

import "time"

// RiskLevel is the reporter-facing severity classification of a hazard.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether l is one of the known risk levels.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// MediaType identifies the kind of media attached to a report.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether m is a known media type.
func (m MediaType) Valid() bool {
	return m == MediaImage || m == MediaVideo
}

// HazardReport is a citizen-submitted record of an observed ocean or
// coastal hazard. Identifier and creation timestamp are assigned by the
// store; like/comment counters and the verified/reviewed flags always
// start zeroed regardless of the submitted payload.
//
// Fields:
//  ID                 – unique identifier of the report.
//  UserID             – identifier of the submitting user.
//  Username           – denormalized display name of the submitter.
//  Description        – free-text description of the hazard.
//  Media              – optional URL of attached media.
//  MediaType          – kind of the attached media (image or video).
//  Latitude/Longitude – coordinates of the observation.
//  Location           – optional human-readable location string.
//  GeoTagged          – whether coordinates were captured automatically.
//  Verified           – set by an authority once the report is confirmed.
//  RiskLevel          – severity classification, defaults to medium.
//  UrgencyScore       – response priority on a 1–10 scale, default 5.
//  TrustScore         – credibility estimate on a 1–10 scale, default 5.
//  Likes/Comments     – engagement counters, start at 0.
//  AssignedVolunteers – identifiers of volunteers claimed for response.
//  AuthorityReviewed  – whether an authority has triaged the report.
//  CreatedAt          – server-assigned creation timestamp.
type HazardReport struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	Username           string     `json:"username"`
	Description        string     `json:"description"`
	Media              *string    `json:"media"`
	MediaType          *MediaType `json:"mediaType"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	Location           *string    `json:"location"`
	GeoTagged          bool       `json:"geoTagged"`
	Verified           bool       `json:"verified"`
	RiskLevel          RiskLevel  `json:"riskLevel"`
	UrgencyScore       float64    `json:"urgencyScore"`
	TrustScore         float64    `json:"trustScore"`
	Likes              int        `json:"likes"`
	Comments           int        `json:"comments"`
	AssignedVolunteers []string   `json:"assignedVolunteers"`
	AuthorityReviewed  bool       `json:"authorityReviewed"`
	CreatedAt          time.Time  `json:"createdAt"`
}
