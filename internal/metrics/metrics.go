// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	// CacheLookups counts content cache lookups by collection and result (hit, miss, error).
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_lookups_total",
			Help: "Content cache lookups by collection and result",
		},
		[]string{"collection", "result"},
	)

	SeededRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_seeded_records_total",
			Help: "Records inserted by the seed-if-empty bootstrap",
		},
		[]string{"collection"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, RequestDuration, CacheLookups, SeededRecords)
}
