// Package reranker implements the cross-encoder reranking service.
//
// A request carries one query and up to 100 candidates. Each candidate is
// scored by a single runner forward pass over the instruction-prefixed
// (query, candidate) pair, sequentially, one pair at a time, which trades
// throughput for freedom from batch-padding inconsistencies. Candidates are
// then stable-sorted by score descending (ties keep input order) and
// truncated to top_k.
//
// A failed pair fails the whole request; there are no partial results.
package reranker
