package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vadmin",
		Name:      "requests_total",
		Help:      "Admin requests by resolved route kind.",
	}, []string{"kind"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vadmin",
		Name:      "request_duration_seconds",
		Help:      "Admin request duration by resolved route kind.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
)

func observeRequest(kind string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(kind).Inc()
	requestDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
