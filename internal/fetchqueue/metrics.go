package fetchqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Subsystem: "fetchqueue",
			Name:      "submissions_total",
			Help:      "Jobs accepted into a shard queue.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Subsystem: "fetchqueue",
			Name:      "queue_full_total",
			Help:      "Submissions rejected because the shard queue stayed full.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tmdb_client",
			Subsystem: "fetchqueue",
			Name:      "queue_depth",
			Help:      "Current number of queued jobs per shard.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tmdb_client",
			Subsystem: "fetchqueue",
			Name:      "job_duration_seconds",
			Help:      "Wall time of individual job attempts.",
		},
		[]string{"shard"},
	)

	rateLimitWaits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tmdb_client",
			Subsystem: "fetchqueue",
			Name:      "rate_limit_waits_total",
			Help:      "Retries that waited a server-requested Retry-After interval.",
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
