package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	RequestsTotal        *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	RegistrationsCreated prometheus.Counter
	NotificationsCreated prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campus_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RegistrationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campus_registrations_created_total",
			Help: "Total number of event registrations created",
		}),
		NotificationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campus_notifications_created_total",
			Help: "Total number of notifications written by the fan-out",
		}),
	}
}
