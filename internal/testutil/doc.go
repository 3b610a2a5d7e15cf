// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Fixture helpers (MustWriteJSON, MustWriteFile, MustMkdirAll) write store and
// config files; LogRecorder captures structured log output for assertions.
package testutil
