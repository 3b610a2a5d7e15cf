// SPDX-License-Identifier: MPL-2.0

// Package wslenv defines the value types shared with the external producer
// that records WSL Python interpreters: the environment record, its identity
// key, and the persisted document that groups records by workspace.
//
// This package is a leaf dependency: it imports only the standard library.
// The JSON field names and the key format are an interoperability contract
// with the producer and must not change independently of it.
package wslenv
