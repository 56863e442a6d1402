package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	DonorsRegistered      prometheus.Counter
	AppointmentsScheduled prometheus.Counter
	AppointmentsCancelled prometheus.Counter
	RequestDuration       *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry so repeated construction does not collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DonorsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifelink_donors_registered_total",
			Help: "Total number of donors registered.",
		}),
		AppointmentsScheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifelink_appointments_scheduled_total",
			Help: "Total number of appointments scheduled.",
		}),
		AppointmentsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifelink_appointments_cancelled_total",
			Help: "Total number of appointments cancelled.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifelink_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}
