// SPDX-License-Identifier: MPL-2.0

// Package issue holds user-facing error guidance: ActionableError for errors
// that carry an operation and fix suggestions, and a catalog of markdown
// help pages rendered with glamour for the conditions wslenv users hit most.
package issue
