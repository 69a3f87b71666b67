package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Name:      "requests_total",
			Help:      "API request attempts by operation and status code.",
		},
		[]string{"operation", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tmdb_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of individual request attempts.",
		},
		[]string{"operation"},
	)

	rateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Name:      "rate_limited_total",
			Help:      "Requests that waited out a Retry-After interval.",
		},
		[]string{"operation"},
	)
)
