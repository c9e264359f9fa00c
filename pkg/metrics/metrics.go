package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charity_site", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charity_site", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	ContentSaves = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "charity_site", Name: "content_saves_total", Help: "Number of successful content document writes."},
	)
	UploadsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charity_site", Name: "uploads_rejected_total", Help: "Number of rejected asset uploads by reason."},
		[]string{"reason"},
	)
	JoinSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charity_site", Name: "join_submissions_total", Help: "Number of join form submissions by outcome."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(ContentSaves)
	reg.MustRegister(UploadsRejected)
	reg.MustRegister(JoinSubmissions)
}
