// Package model holds the pieces shared by all three serving shims: compute
// device names, the one-shot model loader, and the HTTP client for the
// model-runner sidecar.
//
// # Loader
//
// Acquiring a model is a small state machine:
//
//	unloaded → attempting-accelerated → loaded-accelerated
//	                   |
//	                   └→ attempting-fallback → loaded-fallback | failed
//
// Loader runs it exactly once per process, guarded by a single-use latch.
// The first caller (startup hook or first request, whichever comes first)
// pays for acquisition; everyone else gets the memoized handle. A successful
// fallback is never re-escalated to the accelerator, and a failed fallback is
// memoized as a permanent error: device choice is fixed for the process
// lifetime.
//
// # Runner client
//
// Inference is delegated to a model-runner sidecar over JSON/HTTP. The
// runner owns tokenization and the forward pass; this repository only ships
// request payloads and reshapes responses. RunnerClient carries the base URL
// and timeout and exposes PostJSON, mirroring how the services talk to any
// inference endpoint.
package model
