package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-коллекторов сервиса.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	availabilityChecksTotal *prometheus.CounterVec
	bookingsSubmittedTotal  *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry и возвращает их.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests processed, by method, path and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency, by method and path.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Requests issued to the homestay backend, by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Homestay backend request latency, by operation.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		availabilityChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Availability checks performed, by result (available, sold_out, insufficient, unknown).",
			ConstLabels: constLabels,
		}, []string{"result"}),

		bookingsSubmittedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_submitted_total",
			Help:        "Booking submissions, by outcome (accepted, rejected, failed).",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP-запрос.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest учитывает запрос к бэкенду усадьбы.
func (m *Metrics) ObserveUpstreamRequest(operation, outcome string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// CountAvailabilityCheck учитывает результат проверки доступности.
func (m *Metrics) CountAvailabilityCheck(result string) {
	m.availabilityChecksTotal.WithLabelValues(result).Inc()
}

// CountBookingSubmission учитывает исход отправки бронирования.
func (m *Metrics) CountBookingSubmission(outcome string) {
	m.bookingsSubmittedTotal.WithLabelValues(outcome).Inc()
}
