// Package metrics defines Prometheus metrics for lexnetd.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lexnet_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexnet_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexnet_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	WalksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lexnet_walks_total",
			Help: "Total ego-network walks run",
		},
	)

	WalkFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lexnet_walk_failures_total",
			Help: "Total ego-network walks that failed",
		},
	)

	NeighboursFound = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lexnet_walk_neighbours_total",
			Help: "Total neighbours discovered across all walks",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lexnet_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		WalksTotal, WalkFailures, NeighboursFound,
		WSConnections,
	)
}
