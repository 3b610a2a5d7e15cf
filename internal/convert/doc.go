// SPDX-License-Identifier: MPL-2.0

// Package convert turns stored WSL environment records into the environment
// items the host understands, including the command lines used to run and
// activate each interpreter.
//
// Conversion is deterministic and never panics. A record that fails schema
// validation or cannot yield a resource locator is reported as an error so a
// batch caller can skip it and keep the rest.
package convert
