package dashboard

import "fmt"

// UrgencyTier maps an urgency score onto the label shown next to a report.
// A missing score is its own tier ("Unknown"), not the bottom of the
// numeric scale.
func UrgencyTier(score *float64) string {
	if score == nil {
		return "Unknown"
	}
	switch {
	case *score >= 8:
		return "Critical"
	case *score >= 6:
		return "High"
	case *score >= 4:
		return "Medium"
	default:
		return "Low"
	}
}

// TrustScoreDisplay renders a trust score to one decimal place out of 10,
// or "N/A" when the score is missing.
func TrustScoreDisplay(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/10", *score)
}
