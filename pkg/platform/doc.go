// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// The helpers take the target GOOS as an argument instead of reading
// runtime.GOOS so that path policies for every platform can be exercised
// from a single test run.
package platform
