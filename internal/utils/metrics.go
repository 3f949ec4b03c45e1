package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "wellness_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	// handler is the route, type the error class
	ErrorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_errors_total",
			Help: "Total app errors",
		},
		[]string{"handler", "type"},
	)

	EntriesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_entries_created_total",
			Help: "Journal entries created, by kind",
		},
		[]string{"kind"},
	)

	metricsOnce sync.Once
)

func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(ReqCount, ReqDuration, ErrorCount, EntriesCreated)
	})
}
