// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// CaseInsensitivePaths reports whether workspace paths recorded on goos are
// compared case-insensitively. Only Windows qualifies: the producer lowercases
// mapping keys there and nowhere else, so macOS keeps the exact case even
// though its default filesystem is case-insensitive.
func CaseInsensitivePaths(goos string) bool {
	return goos == Windows
}

// PathSeparator returns the native path separator for goos.
func PathSeparator(goos string) byte {
	if goos == Windows {
		return '\\'
	}
	return '/'
}
