package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RefreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_refresh_runs_total",
			Help: "Total number of refresh cycles by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RefreshDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_refresh_duration_seconds",
			Help:    "Duration of refresh cycles in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_requests_total",
			Help: "Total number of requests to the evaluation service",
		},
		[]string{"resource", "outcome"},
	)

	RemoteRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remote_request_duration_seconds",
			Help:    "Duration of requests to the evaluation service in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	TrackedUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_tracked_users",
			Help: "Number of users with a fetched post list",
		},
	)

	TrackedPosts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_tracked_posts",
			Help: "Length of the flat post list",
		},
	)

	TrackedCommentCounts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_tracked_comment_counts",
			Help: "Number of posts with a known comment count",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
