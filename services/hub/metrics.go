package hub

import (
	"sync"

	"github.com/dymensionxyz/kaspa-validator/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusHubQueries         *prometheus.CounterVec
	prometheusHubQueryDuration   *prometheus.HistogramVec
	prometheusDeliveredCacheHits prometheus.Counter
	prometheusDeliveredCacheMiss prometheus.Counter
	prometheusMetricsInitOnce    sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusHubQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kasvalidator",
			Subsystem: "hub",
			Name:      "queries",
			Help:      "Number of hub queries by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)

	prometheusHubQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kasvalidator",
			Subsystem: "hub",
			Name:      "query_duration",
			Help:      "Duration of hub queries including retries",
			Buckets:   util.MetricsBucketsMilliLongSeconds,
		},
		[]string{"endpoint"},
	)

	prometheusDeliveredCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kasvalidator",
			Subsystem: "hub",
			Name:      "delivered_cache_hits",
			Help:      "Number of delivered queries answered from the cache",
		},
	)

	prometheusDeliveredCacheMiss = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kasvalidator",
			Subsystem: "hub",
			Name:      "delivered_cache_misses",
			Help:      "Number of delivered queries sent to the hub",
		},
	)
}
