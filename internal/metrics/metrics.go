package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sacrepadel_http_requests_total",
			Help: "Общее количество HTTP запросов",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sacrepadel_http_request_duration_seconds",
			Help:    "Время обработки HTTP запросов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Бронирования
	BookingOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sacrepadel_booking_operations_total",
			Help: "Операции над бронированиями по результату",
		},
		[]string{"operation", "outcome"},
	)

	ConfirmationEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sacrepadel_confirmation_emails_total",
			Help: "Письма с подтверждением брони",
		},
		[]string{"status"}, // sent, failed, skipped
	)
)

// RecordHTTPRequest записывает метрику HTTP запроса
func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordOperation записывает исход операции: ok, conflict, not_found, invalid, error
func RecordOperation(operation, outcome string) {
	BookingOperations.WithLabelValues(operation, outcome).Inc()
}

func RecordConfirmationEmail(status string) {
	ConfirmationEmails.WithLabelValues(status).Inc()
}
