// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeEmptyResponse   = "empty_response"
	OutcomeGenerationError = "generation_error"
)

var (
	// SRS generation
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planovo_srs_generation_requests_total",
			Help: "SRS generation requests by backend and outcome",
		},
		[]string{"backend", "outcome"},
	)
	GenerationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planovo_srs_generation_duration_seconds",
			Help:    "Latency of generation backend calls",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10), // 0.5s..256s
		},
		[]string{"backend"},
	)

	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planovo_http_requests_total",
			Help: "HTTP requests by route pattern, method and status code",
		},
		[]string{"route", "method", "code"},
	)
	HTTPDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planovo_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Webhooks
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planovo_webhook_events_total",
			Help: "Clerk webhook deliveries by event type and result",
		},
		[]string{"event_type", "result"}, // result: processed|ignored|rejected|failed
	)
)

func init() {
	prometheus.MustRegister(
		GenerationRequests,
		GenerationDurationSeconds,
		HTTPRequests,
		HTTPDurationSeconds,
		WebhookEvents,
	)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Generation
func IncGeneration(backend, outcome string) {
	GenerationRequests.WithLabelValues(backend, outcome).Inc()
}

func ObserveGenerationDuration(backend string, d time.Duration) {
	GenerationDurationSeconds.WithLabelValues(backend).Observe(d.Seconds())
}

// HTTP
func ObserveHTTPRequest(route, method string, code int, d time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	HTTPDurationSeconds.WithLabelValues(route).Observe(d.Seconds())
}

// Webhooks
func IncWebhookEvent(eventType, result string) {
	WebhookEvents.WithLabelValues(eventType, result).Inc()
}
