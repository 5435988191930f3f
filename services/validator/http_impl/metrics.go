package http_impl

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// prometheusSignWithdrawal counts sign requests by outcome
	prometheusSignWithdrawal *prometheus.CounterVec

	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusSignWithdrawal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kasvalidator",
			Subsystem: "http",
			Name:      "sign_withdrawal",
			Help:      "Number of withdrawal sign requests by result",
		},
		[]string{"result"},
	)
}
