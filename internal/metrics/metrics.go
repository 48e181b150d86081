package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal - количество HTTP-запросов
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sos_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration - длительность обработки HTTP-запросов
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sos_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// AlertTransitionsTotal - созданные тревоги и переходы статусов
	AlertTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sos_alert_transitions_total",
			Help: "Alert lifecycle transitions by target status",
		},
		[]string{"status"},
	)

	// EmailsTotal - результаты отправки писем экстренным контактам
	EmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sos_emails_total",
			Help: "Outbound emails by outcome",
		},
		[]string{"outcome"},
	)

	// APIKeyRejectionsTotal - запросы к административным маршрутам, отклоненные по ключу
	APIKeyRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sos_api_key_rejections_total",
			Help: "Admin requests rejected by API key check",
		},
		[]string{"reason"},
	)
)
