package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stemmer",
		Name:      "requests_total",
		Help:      "Stemming requests served, by cache outcome.",
	}, []string{"cache"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stemmer",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving a stemming request.",
		Buckets:   prometheus.DefBuckets,
	})
)

func newMetrics() *metrics {
	return &metrics{
		requests: requestsTotal,
		duration: requestDuration,
	}
}

func (m *metrics) observe(cacheHit bool, d time.Duration) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.requests.WithLabelValues(outcome).Inc()
	if d > 0 {
		m.duration.Observe(d.Seconds())
	}
}

func (m *metrics) observeBatch(d time.Duration) {
	m.duration.Observe(d.Seconds())
}
