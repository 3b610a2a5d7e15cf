// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"github.com/invowk/wslenv/internal/convert"
	"github.com/invowk/wslenv/pkg/wslenv"
)

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"
)

const (
	// CodeStoreMissing reports that the shared file does not exist yet.
	CodeStoreMissing DiagnosticCode = "store_missing"
	// CodeStoreUnreadable reports a shared file that could not be read or decoded.
	CodeStoreUnreadable DiagnosticCode = "store_unreadable"
	// CodeStoreVersionMismatch reports a shared file written with another schema version.
	CodeStoreVersionMismatch DiagnosticCode = "store_version_mismatch"
	// CodeRecordSkipped reports a record that could not be converted.
	CodeRecordSkipped DiagnosticCode = "record_skipped"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable diagnostic identifier.
	DiagnosticCode string

	// Diagnostic represents a structured discovery diagnostic that is returned
	// to callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "record_skipped").
		Code DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Path is the store file associated with this diagnostic (optional).
		Path string
		// Key is the record associated with this diagnostic (optional).
		Key wslenv.EnvironmentKey
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}

	// Result bundles discovered environments with the diagnostics produced
	// while building them.
	Result struct {
		Environments []*convert.Environment
		Diagnostics  []Diagnostic
		// Document is the store document the result was built from; empty
		// when the store could not be loaded. Never nil from Discover.
		Document *wslenv.Document
	}
)

// String returns the string representation of the Severity.
func (s Severity) String() string { return string(s) }

// String returns the string representation of the DiagnosticCode.
func (c DiagnosticCode) String() string { return string(c) }

// StoreProblem returns the diagnostic explaining why the store document is
// empty, if there is one.
func (r Result) StoreProblem() (Diagnostic, bool) {
	for _, d := range r.Diagnostics {
		if d.Key == "" {
			return d, true
		}
	}
	return Diagnostic{}, false
}

// HasErrors reports whether any diagnostic has SeverityError.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
