// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for wslenv.
//
// The commands are thin: every handler receives the App composition root,
// loads configuration through it, and delegates to the discovery façade.
// Output goes to the App's writers so tests can capture it.
package cmd
