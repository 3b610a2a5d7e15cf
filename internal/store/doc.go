// SPDX-License-Identifier: MPL-2.0

// Package store reads the shared WSL environment file written by the external
// producer and caches it in memory.
//
// The store never writes the file. Every query is served from a cached
// document that is loaded lazily, read as a single blob so that a concurrent
// rewrite by the producer can only ever fail the whole parse, and dropped
// again by ClearCache when the caller knows the producer has updated it.
//
// Query methods never return errors: a missing, unreadable, malformed or
// version-mismatched file behaves as an empty document and the reason is
// logged. Load exposes the same algorithm with the reason attached for
// diagnostic tooling.
//
// File organization:
//   - store.go: Store type and query methods
//   - load.go: load algorithm and document decoding
//   - path.go: storage location and workspace path normalization
//   - errors.go: load error types
package store
