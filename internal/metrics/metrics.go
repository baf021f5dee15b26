package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	Predictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "forgecast",
			Subsystem: "prediction",
			Name:      "total",
			Help:      "Predictions served, by method",
		},
		[]string{"method"},
	)

	DelegateFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "forgecast",
			Subsystem: "delegate",
			Name:      "failures_total",
			Help:      "Delegate calls that failed and fell back, by reason",
		},
		[]string{"reason"},
	)

	MarketDataErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "forgecast",
			Subsystem: "market",
			Name:      "errors_total",
			Help:      "Kline fetches that failed and used the default estimate",
		},
	)

	PredictionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "forgecast",
			Subsystem: "prediction",
			Name:      "latency_seconds",
			Help:      "Time to produce a prediction, by method",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Register adds the collectors to the default registry. Safe to call repeatedly.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(Predictions, DelegateFailures, MarketDataErrors, PredictionLatency)
	})
}
