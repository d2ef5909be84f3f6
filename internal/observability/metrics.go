package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus counters for the hazard API.
type Metrics struct {
	ReportsCreated       prometheus.Counter
	ReportsReviewed      prometheus.Counter
	VolunteerAssignments prometheus.Counter
	SocialPostsCreated   prometheus.Counter
}

// NewMetrics creates and registers all counters with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsCreated,
		m.ReportsReviewed,
		m.VolunteerAssignments,
		m.SocialPostsCreated,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazard_watch",
			Name:      "reports_created_total",
			Help:      "Total hazard reports accepted.",
		}),
		ReportsReviewed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazard_watch",
			Name:      "reports_reviewed_total",
			Help:      "Total authority review actions.",
		}),
		VolunteerAssignments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazard_watch",
			Name:      "volunteer_assignments_total",
			Help:      "Total volunteer assignments added to reports.",
		}),
		SocialPostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazard_watch",
			Name:      "social_posts_created_total",
			Help:      "Total social posts ingested.",
		}),
	}
}
