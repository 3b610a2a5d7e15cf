// SPDX-License-Identifier: MPL-2.0

package store

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/invowk/wslenv/pkg/platform"

	"github.com/adrg/xdg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ProductDir is the directory, under the application data directory, that
	// the producer and this module share.
	ProductDir = "python-envs-wsl"
	// FileName is the name of the shared file inside ProductDir.
	FileName = "wsl-environments.json"
)

// DefaultPath returns the shared file location used when no explicit path is
// configured: %APPDATA% on Windows, ~/Library/Application Support on macOS,
// and the XDG data home elsewhere. It must match the producer's choice.
func DefaultPath() (string, error) {
	dir, err := dataDir(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProductDir, FileName), nil
}

func dataDir(goos string) (string, error) {
	switch goos {
	case platform.Windows:
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Roaming"), nil
		}
		return "", fmt.Errorf("%w: neither APPDATA nor USERPROFILE is set", ErrNoDataDir)
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoDataDir, err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if xdg.DataHome == "" {
			return "", fmt.Errorf("%w: XDG data home is empty", ErrNoDataDir)
		}
		return xdg.DataHome, nil
	}
}

// NormalizeWorkspacePath converts a workspace path into the form the producer
// uses as a workspaceMapping key on the current platform.
func NormalizeWorkspacePath(p string) string {
	return normalizeWorkspacePath(p, runtime.GOOS)
}

// normalizeWorkspacePath cleans p for goos. Separators become the native
// one for goos and trailing separators are dropped except at a root. Paths
// are lowercased where goos compares them case-insensitively.
func normalizeWorkspacePath(p, goos string) string {
	if p == "" {
		return ""
	}

	s := path.Clean(p)
	if sep := platform.PathSeparator(goos); sep != '/' {
		s = cleanVolumePath(p, string(sep))
	}

	if platform.CaseInsensitivePaths(goos) {
		s = cases.Lower(language.Und).String(s)
	}
	return s
}

// cleanVolumePath cleans a path that may carry a drive letter or UNC prefix,
// accepting either slash and joining with sep.
func cleanVolumePath(p, sep string) string {
	s := strings.ReplaceAll(p, `\`, "/")
	var prefix string
	switch {
	case strings.HasPrefix(s, "//"):
		prefix, s = sep+sep, strings.TrimLeft(s, "/")
	case len(s) >= 2 && s[1] == ':':
		prefix, s = s[:2], s[2:]
	}

	if s != "" {
		s = strings.ReplaceAll(path.Clean(s), "/", sep)
	}
	return prefix + s
}
