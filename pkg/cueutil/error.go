// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned by CheckFileSize.
var ErrFileTooLarge = errors.New("input exceeds maximum size")

// ValidationError is a CUE failure for one input, with one line per
// offending field.
type ValidationError struct {
	// Filename is the input the error refers to.
	Filename string
	// Fields holds "<path>: <message>" entries, or bare messages for errors
	// without a path.
	Fields []string
	// Err is the original CUE error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Filename + ": " + e.Fields[0]
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.Filename, strings.Join(e.Fields, "\n  "))
}

// Unwrap returns the original CUE error.
func (e *ValidationError) Unwrap() error { return e.Err }

// FormatError turns a CUE error into a *ValidationError whose lines are
// prefixed with JSON-style field paths, e.g. "envs[0].kind: ...". Errors that
// carry no CUE detail are wrapped with the filename.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	fields := make([]string, 0, len(list))
	for _, e := range list {
		p := formatPath(cueerrors.Path(e))
		msg := e.Error()
		if p == "" {
			fields = append(fields, msg)
			continue
		}
		// CUE usually repeats the path at the start of the message.
		msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, strings.Join(cueerrors.Path(e), ".")), ":"))
		fields = append(fields, p+": "+msg)
	}

	return &ValidationError{Filename: filename, Fields: fields, Err: err}
}

// formatPath renders ["envs", "0", "kind"] as "envs[0].kind".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			sb.WriteString("[" + part + "]")
		case i > 0:
			sb.WriteString("." + part)
		default:
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error wrapping ErrFileTooLarge when data is
// larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: %w: %d bytes, maximum %d", filename, ErrFileTooLarge, len(data), maxSize)
	}
	return nil
}
