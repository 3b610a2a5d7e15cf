// SPDX-License-Identifier: MPL-2.0

// Package discovery is the entry point the host calls to list WSL Python
// environments. It combines the store and the converter: records are read
// from the store, converted one by one, and records that fail conversion are
// skipped so that one bad record never hides the rest.
//
// The list operations return plain environment slices. Discover and
// DiscoverWorkspace return the same environments together with diagnostics
// for the skipped records and for a store that could not be read, leaving the
// rendering policy to the caller.
package discovery
