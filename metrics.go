package tmdb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hydrationsEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Name:      "hydrations_enqueued_total",
			Help:      "Detail fetches accepted into the fetch executor.",
		},
		[]string{"shard"},
	)

	hydrationFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Name:      "hydration_failures_total",
			Help:      "Detail fetches whose job returned an error after retries.",
		},
		[]string{"shard"},
	)
)
