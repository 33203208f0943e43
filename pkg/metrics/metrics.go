package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsTotal         *prometheus.CounterVec
	EnrollmentsTotal   *prometheus.CounterVec
	EmailsSentTotal    *prometheus.CounterVec
	EmailSendFailures  prometheus.Counter
	BookingsTotal      *prometheus.CounterVec
	DispatchTickErrors prometheus.Counter

	// Queue metrics
	PendingMessages prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		LeadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_total",
				Help: "Total number of leads captured",
			},
			[]string{"kind"},
		),
		EnrollmentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrollments_total",
				Help: "Total number of drip enrollments created",
			},
			[]string{"pathway"},
		),
		EmailsSentTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_sent_total",
				Help: "Total number of emails delivered",
			},
			[]string{"provider"},
		),
		EmailSendFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "email_send_failures_total",
			Help: "Total number of email sends that exhausted all providers",
		}),
		BookingsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Total number of booking webhook events processed",
			},
			[]string{"event"},
		),
		DispatchTickErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_tick_errors_total",
			Help: "Total number of dispatcher ticks that returned an error",
		}),

		PendingMessages: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scheduled_messages_pending",
			Help: "Number of scheduled messages waiting to be sent",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not actual path

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLead increments the captured-leads counter
func (m *Metrics) RecordLead(kind string) {
	m.LeadsTotal.WithLabelValues(kind).Inc()
}

// RecordEnrollment increments the enrollments counter
func (m *Metrics) RecordEnrollment(pathway string) {
	m.EnrollmentsTotal.WithLabelValues(pathway).Inc()
}

// RecordEmailSent increments the delivered-emails counter
func (m *Metrics) RecordEmailSent(provider string) {
	m.EmailsSentTotal.WithLabelValues(provider).Inc()
}

// RecordEmailFailure increments the exhausted-providers counter
func (m *Metrics) RecordEmailFailure() {
	m.EmailSendFailures.Inc()
}

// RecordBooking increments the booking-events counter
func (m *Metrics) RecordBooking(event string) {
	m.BookingsTotal.WithLabelValues(event).Inc()
}

// RecordDispatchError increments the dispatcher-tick errors counter
func (m *Metrics) RecordDispatchError() {
	m.DispatchTickErrors.Inc()
}

// SetPendingMessages updates the pending-messages gauge
func (m *Metrics) SetPendingMessages(count float64) {
	m.PendingMessages.Set(count)
}
