package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus registry and the HTTP server exposing it.
type Metrics struct {
	// Server serves /metrics on its own listener.
	Server *http.Server

	// Registry is the service-local Prometheus registry. Each service keeps
	// an isolated registry to avoid metric name collisions.
	Registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	inferenceDuration *prometheus.HistogramVec
	modelLoaded       *prometheus.GaugeVec

	wrapped prometheus.Registerer
}

// NewMetrics builds a Metrics instance: isolated registry, constant service
// label, core instruments, default collectors when enabled, and an HTTP
// server exposing /metrics at cfg.Address.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by the service carry service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
		wrapped:  wrappedRegistry,
	}

	m.requestsTotal = createCounterVec("requests_total", "Total number of processed requests", []string{"status"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.inferenceDuration = createHistogramVec("inference_duration_seconds", "Duration of model inference calls in seconds", []string{"operation"},
		[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30})
	m.modelLoaded = createGaugeVec("model_loaded", "Whether the model is resident (1) and on which device", []string{"device"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.inferenceDuration,
		m.modelLoaded,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}

// IncrementRequests increments the request counter with a status label
// ("2xx", "4xx", "5xx").
func (m *Metrics) IncrementRequests(status string) {
	m.requestsTotal.WithLabelValues(status).Inc()
}

// RecordRequestDuration records the elapsed time since start for an endpoint.
func (m *Metrics) RecordRequestDuration(start time.Time, endpoint string) {
	m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// RecordInferenceDuration records the elapsed time since start for one model
// call ("encode", "score", "embed_image", ...).
func (m *Metrics) RecordInferenceDuration(start time.Time, operation string) {
	m.inferenceDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// SetModelLoaded marks the model as resident on a device.
func (m *Metrics) SetModelLoaded(device string) {
	m.modelLoaded.WithLabelValues(device).Set(1)
}

// CreateCounter creates and registers an additional CounterVec.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	c := createCounterVec(name, help, labels)
	m.wrapped.MustRegister(c)
	return c
}

// CreateHistogram creates and registers an additional HistogramVec.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	h := createHistogramVec(name, help, labels, buckets)
	m.wrapped.MustRegister(h)
	return h
}

// CreateGauge creates and registers an additional GaugeVec.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	g := createGaugeVec(name, help, labels)
	m.wrapped.MustRegister(g)
	return g
}
