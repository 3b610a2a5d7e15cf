// SPDX-License-Identifier: MPL-2.0

package wslenv

import (
	"errors"
	"testing"
)

func TestNewEnvironmentKey(t *testing.T) {
	t.Parallel()

	got := NewEnvironmentKey("Ubuntu-22.04", "/mnt/c/w/.venv/bin/python")
	want := EnvironmentKey("wsl:Ubuntu-22.04:/mnt/c/w/.venv/bin/python")
	if got != want {
		t.Errorf("NewEnvironmentKey() = %q, want %q", got, want)
	}
}

func TestEnvironmentRecord_Key(t *testing.T) {
	t.Parallel()

	record := EnvironmentRecord{Distribution: "Debian", PythonPath: "/usr/bin/python3"}
	if got := record.Key(); got != "wsl:Debian:/usr/bin/python3" {
		t.Errorf("Key() = %q", got)
	}
}

func TestParseEnvironmentKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        EnvironmentKey
		wantDistro string
		wantPath   string
		wantErr    bool
	}{
		{
			name:       "venv interpreter",
			key:        "wsl:Ubuntu-22.04:/mnt/c/w/.venv/bin/python",
			wantDistro: "Ubuntu-22.04",
			wantPath:   "/mnt/c/w/.venv/bin/python",
		},
		{
			name:       "path containing colon",
			key:        "wsl:Debian:/opt/a:b/python",
			wantDistro: "Debian",
			wantPath:   "/opt/a:b/python",
		},
		{name: "wrong namespace", key: "conda:Debian:/usr/bin/python", wantErr: true},
		{name: "no separators", key: "wsl", wantErr: true},
		{name: "missing path", key: "wsl:Debian", wantErr: true},
		{name: "empty distribution", key: "wsl::/usr/bin/python", wantErr: true},
		{name: "empty path", key: "wsl:Debian:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			distro, path, err := ParseEnvironmentKey(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEnvironmentKey(%q) expected error", tt.key)
				}
				if !errors.Is(err, ErrInvalidEnvironmentKey) {
					t.Errorf("error should wrap ErrInvalidEnvironmentKey, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnvironmentKey(%q) returned error: %v", tt.key, err)
			}
			if distro != tt.wantDistro || path != tt.wantPath {
				t.Errorf("ParseEnvironmentKey(%q) = (%q, %q), want (%q, %q)", tt.key, distro, path, tt.wantDistro, tt.wantPath)
			}
			if rebuilt := NewEnvironmentKey(distro, path); rebuilt != tt.key {
				t.Errorf("rebuilt key %q differs from %q", rebuilt, tt.key)
			}
		})
	}
}
