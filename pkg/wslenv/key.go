// SPDX-License-Identifier: MPL-2.0

package wslenv

import (
	"errors"
	"fmt"
	"strings"
)

// KeyNamespace prefixes every environment key written by the producer.
const KeyNamespace = "wsl"

// ErrInvalidEnvironmentKey is the sentinel error wrapped by InvalidEnvironmentKeyError.
var ErrInvalidEnvironmentKey = errors.New("invalid environment key")

type (
	// EnvironmentKey identifies a record as "<namespace>:<distribution>:<interpreter-path>".
	// The same string doubles as the environment's resource locator, so its
	// format is shared with the producer byte for byte.
	EnvironmentKey string

	// InvalidEnvironmentKeyError is returned when a key does not have the
	// namespace:distribution:path shape.
	InvalidEnvironmentKeyError struct {
		Value  EnvironmentKey
		Reason string
	}
)

// NewEnvironmentKey builds the key for an interpreter inside a distribution.
// It is the only place the key format is assembled.
func NewEnvironmentKey(distribution, pythonPath string) EnvironmentKey {
	return EnvironmentKey(KeyNamespace + ":" + distribution + ":" + pythonPath)
}

// ParseEnvironmentKey splits a key into its distribution and interpreter path.
// The path keeps any further colons, which are legal in POSIX paths.
func ParseEnvironmentKey(key EnvironmentKey) (distribution, pythonPath string, err error) {
	namespace, rest, ok := strings.Cut(string(key), ":")
	if !ok || namespace != KeyNamespace {
		return "", "", &InvalidEnvironmentKeyError{Value: key, Reason: "missing " + KeyNamespace + " namespace"}
	}
	distribution, pythonPath, ok = strings.Cut(rest, ":")
	if !ok || distribution == "" {
		return "", "", &InvalidEnvironmentKeyError{Value: key, Reason: "missing distribution"}
	}
	if pythonPath == "" {
		return "", "", &InvalidEnvironmentKeyError{Value: key, Reason: "missing interpreter path"}
	}
	return distribution, pythonPath, nil
}

// String returns the string representation of the EnvironmentKey.
func (k EnvironmentKey) String() string { return string(k) }

// Validate returns an error if the key cannot be parsed.
func (k EnvironmentKey) Validate() error {
	_, _, err := ParseEnvironmentKey(k)
	return err
}

// Error implements the error interface for InvalidEnvironmentKeyError.
func (e *InvalidEnvironmentKeyError) Error() string {
	return fmt.Sprintf("invalid environment key %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidEnvironmentKey for errors.Is() compatibility.
func (e *InvalidEnvironmentKeyError) Unwrap() error { return ErrInvalidEnvironmentKey }
