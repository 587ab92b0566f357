// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskflow_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskflow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "taskflow_http_active_requests",
			Help: "Number of in-flight HTTP requests",
		},
	)

	ActivityLogWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskflow_activity_log_writes_total",
			Help: "Activity log entries written, by action",
		},
		[]string{"action"},
	)

	OverdueReminders = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "taskflow_overdue_reminders",
			Help: "Incomplete tasks whose reminder is due and not yet notified, by user",
		},
		[]string{"user_id"},
	)
)
