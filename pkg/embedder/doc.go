// Package embedder implements the text embedding service: a thin HTTP shim
// in front of a batch text-encoder on the model runner.
//
// One request carries 1–256 texts; the whole slice is handed to the runner
// in a single encode call (capacity is enforced by the cap, not by
// chunking). Each text comes back as a dense vector and, when requested, a
// sparse mapping of token id → lexical weight with zero entries filtered
// out. The runner may report lexical weights either as an already-sparse
// object or as a dense per-token array; both are accepted.
//
// The model is acquired once per process through model.Loader: eagerly at
// startup and lazily on the first request, whichever comes first, with the
// one-shot GPU→CPU fallback.
package embedder
