package validator

import (
	"sync"

	"github.com/dymensionxyz/kaspa-validator/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics collectors
var (
	// prometheusSignRequests counts withdrawal signing requests
	prometheusSignRequests prometheus.Counter

	// prometheusRejectedBatches counts batches rejected by a policy check, by error code
	prometheusRejectedBatches *prometheus.CounterVec

	// prometheusValidateMessages measures message-set validation including hub queries
	prometheusValidateMessages prometheus.Histogram

	// prometheusValidateChain measures pskt chain validation
	prometheusValidateChain prometheus.Histogram

	// prometheusSignBundle measures bundle signing
	prometheusSignBundle prometheus.Histogram

	// prometheusBatchMessages tracks the number of messages per batch
	prometheusBatchMessages prometheus.Histogram

	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusSignRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kasvalidator",
			Subsystem: "validator",
			Name:      "sign_requests",
			Help:      "Number of withdrawal signing requests",
		},
	)

	prometheusRejectedBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kasvalidator",
			Subsystem: "validator",
			Name:      "rejected_batches",
			Help:      "Number of withdrawal batches rejected by policy, by error code",
		},
		[]string{"code"},
	)

	prometheusValidateMessages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kasvalidator",
			Subsystem: "validator",
			Name:      "validate_messages",
			Help:      "Histogram of message set validation",
			Buckets:   util.MetricsBucketsMilliLongSeconds,
		},
	)

	prometheusValidateChain = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kasvalidator",
			Subsystem: "validator",
			Name:      "validate_chain",
			Help:      "Histogram of pskt chain validation",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)

	prometheusSignBundle = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kasvalidator",
			Subsystem: "validator",
			Name:      "sign_bundle",
			Help:      "Histogram of bundle signing",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)

	prometheusBatchMessages = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kasvalidator",
			Subsystem: "validator",
			Name:      "batch_messages",
			Help:      "Number of messages per withdrawal batch",
			Buckets:   util.MetricsBucketsCount,
		},
	)
}
