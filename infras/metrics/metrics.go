package metrics

import (
	"hostel/config"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SubmissionCreated    = "created"
	SubmissionInvalid    = "invalid"
	SubmissionFailed     = "failed"
	SubmissionInProgress = "in_progress"
)

type Metrics interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	SetOccupancyRate(rate int)
	SetGuests(status string, count int)
	IncSubmission(result string)
	Handler() http.Handler
}

type prometheusMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	occupancyRate   prometheus.Gauge
	guests          *prometheus.GaugeVec
	submissions     *prometheus.CounterVec
}

func New(cfg *config.Config) Metrics {
	if !cfg.Metrics.Enable {
		return NewNoop()
	}

	return NewWithNamespace(cfg.Metrics.Namespace)
}

// NewWithNamespace registers every collector on a private registry.
func NewWithNamespace(namespace string) Metrics {
	registry := prometheus.NewRegistry()

	m := &prometheusMetrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		occupancyRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupancy_rate_percent",
			Help:      "Checked-in guests over total beds, as reported by the last stats call.",
		}),
		guests: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "guests",
			Help:      "Guests by status, as reported by the last stats call.",
		}, []string{"status"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guest_form_submissions_total",
			Help:      "Guest form submissions by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.occupancyRate,
		m.guests,
		m.submissions,
	)

	return m
}

func (m *prometheusMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *prometheusMetrics) SetOccupancyRate(rate int) {
	m.occupancyRate.Set(float64(rate))
}

func (m *prometheusMetrics) SetGuests(status string, count int) {
	m.guests.WithLabelValues(status).Set(float64(count))
}

func (m *prometheusMetrics) IncSubmission(result string) {
	m.submissions.WithLabelValues(result).Inc()
}

func (m *prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
