// Package metrics exposes Prometheus metrics for the model serving services.
//
// Each service owns an isolated registry, wrapped with a constant
// service="<name>" label, and serves it from a dedicated HTTP listener at
// /metrics (separate from the API port, so scraping never competes with
// inference traffic).
//
// Built-in instruments:
//
//   - requests_total{status}                request counter
//   - request_duration_seconds{endpoint}    API latency histogram
//   - inference_duration_seconds{operation} model-call latency histogram
//   - model_loaded{device}                  1 once the model is resident
//
// Additional instruments can be created through CreateCounter,
// CreateHistogram, and CreateGauge, which register on the same registry.
package metrics
