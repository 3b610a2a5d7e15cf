// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/invowk/wslenv/internal/testutil"
	"github.com/invowk/wslenv/pkg/wslenv"
)

func venvRecord() wslenv.EnvironmentRecord {
	return wslenv.EnvironmentRecord{
		Distribution:    "Ubuntu-22.04",
		PythonPath:      "/mnt/c/proj/.venv/bin/python",
		EnvironmentPath: "/mnt/c/proj/.venv",
		WorkspacePath:   `C:\proj`,
		Name:            ".venv",
		Kind:            wslenv.KindVenv,
		CreatedAt:       wslenv.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		LastUsedAt:      wslenv.NewTimestamp(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)),
		Version:         "3.11.4",
		SysPrefix:       "/mnt/c/proj/.venv",
	}
}

func systemRecord() wslenv.EnvironmentRecord {
	return wslenv.EnvironmentRecord{
		Distribution:    "Debian",
		PythonPath:      "/usr/bin/python3",
		EnvironmentPath: "/usr",
		Name:            "python3",
		Kind:            wslenv.KindSystem,
		SysPrefix:       "/usr",
	}
}

func newTestConverter(t *testing.T, opts Options) (*Converter, *testutil.LogRecorder) {
	t.Helper()
	logger, rec := testutil.NewLogger()
	if opts.Logger == nil {
		opts.Logger = logger
	}
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return c, rec
}

func TestConvert_Venv(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := venvRecord()
	env, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}

	if env.DisplayName != ".venv (WSL: Ubuntu-22.04)" {
		t.Errorf("DisplayName = %q", env.DisplayName)
	}
	if !strings.Contains(env.DisplayName, record.Name) || !strings.Contains(env.DisplayName, record.Distribution) {
		t.Errorf("DisplayName %q should embed name and distribution", env.DisplayName)
	}
	if env.Version != "3.11.4" {
		t.Errorf("Version = %q, want 3.11.4", env.Version)
	}
	if env.Description != record.PythonPath {
		t.Errorf("Description = %q, want %q", env.Description, record.PythonPath)
	}
	if env.SysPrefix != record.SysPrefix {
		t.Errorf("SysPrefix = %q, want %q", env.SysPrefix, record.SysPrefix)
	}
	if env.EnvID.ManagerID != DefaultManager.Name {
		t.Errorf("ManagerID = %q, want %q", env.EnvID.ManagerID, DefaultManager.Name)
	}

	exec := env.Execution
	wantRun := Command{Executable: DefaultLauncher, Args: []string{"-d", "Ubuntu-22.04", "--", "/mnt/c/proj/.venv/bin/python"}}
	if !reflect.DeepEqual(exec.Run, wantRun) {
		t.Errorf("Run = %+v, want %+v", exec.Run, wantRun)
	}

	if len(exec.Activation) != 1 {
		t.Fatalf("Activation has %d entries, want 1", len(exec.Activation))
	}
	wantActivation := Command{
		Executable: DefaultLauncher,
		Args:       []string{"-d", "Ubuntu-22.04", "--", "bash", "-c", "source /mnt/c/proj/.venv/bin/activate"},
	}
	if !reflect.DeepEqual(exec.Activation[0], wantActivation) {
		t.Errorf("Activation[0] = %+v, want %+v", exec.Activation[0], wantActivation)
	}

	keys := make([]string, 0, len(exec.ShellActivation))
	for k, cmds := range exec.ShellActivation {
		keys = append(keys, k)
		if len(cmds) == 0 {
			t.Errorf("ShellActivation[%q] is empty", k)
		}
	}
	slices.Sort(keys)
	if want := []string{"bash", "fish", "pwsh", "unknown", "zsh"}; !slices.Equal(keys, want) {
		t.Errorf("ShellActivation keys = %v, want %v", keys, want)
	}

	wantShell := map[string]Command{
		"bash":    {Executable: "source", Args: []string{"/mnt/c/proj/.venv/bin/activate"}},
		"zsh":     {Executable: "source", Args: []string{"/mnt/c/proj/.venv/bin/activate"}},
		"fish":    {Executable: "source", Args: []string{"/mnt/c/proj/.venv/bin/activate.fish"}},
		"pwsh":    {Executable: ".", Args: []string{"/mnt/c/proj/.venv/bin/Activate.ps1"}},
		"unknown": {Executable: "source", Args: []string{"/mnt/c/proj/.venv/bin/activate"}},
	}
	for shell, want := range wantShell {
		if got := exec.ShellActivation[shell][0]; !reflect.DeepEqual(got, want) {
			t.Errorf("ShellActivation[%q][0] = %+v, want %+v", shell, got, want)
		}
	}

	if exec.Deactivation == nil {
		t.Fatal("Deactivation should be set for venv")
	}
	if exec.Deactivation.Executable != "deactivate" || exec.Deactivation.Args == nil || len(exec.Deactivation.Args) != 0 {
		t.Errorf("Deactivation = %+v, want {deactivate []}", exec.Deactivation)
	}
}

func TestConvert_SystemHasNoActivation(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := systemRecord()
	env, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}

	exec := env.Execution
	if exec.Activation != nil {
		t.Errorf("Activation = %v, want nil", exec.Activation)
	}
	if exec.ShellActivation != nil {
		t.Errorf("ShellActivation = %v, want nil", exec.ShellActivation)
	}
	if exec.Deactivation != nil {
		t.Errorf("Deactivation = %v, want nil", exec.Deactivation)
	}
	if exec.Run.Executable != DefaultLauncher {
		t.Errorf("Run.Executable = %q, want %q", exec.Run.Executable, DefaultLauncher)
	}
}

func TestConvert_OtherKindHasNoActivation(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := systemRecord()
	record.Kind = wslenv.KindOther
	env, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	if env.Execution.Activation != nil || env.Execution.ShellActivation != nil || env.Execution.Deactivation != nil {
		t.Errorf("kind other should have no activation: %+v", env.Execution)
	}
}

func TestConvert_LocatorRoundTripsKey(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := wslenv.EnvironmentRecord{
		Distribution:    "Ubuntu-22.04",
		PythonPath:      "/mnt/c/w/.venv/bin/python",
		EnvironmentPath: "/mnt/c/w/.venv",
		Name:            ".venv",
		Kind:            wslenv.KindVenv,
	}
	key := record.Key()
	if key != "wsl:Ubuntu-22.04:/mnt/c/w/.venv/bin/python" {
		t.Fatalf("Key() = %q", key)
	}

	env, err := c.Convert(context.Background(), record, key)
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	if env.EnvironmentPath.Scheme != wslenv.KeyNamespace {
		t.Errorf("locator scheme = %q, want %q", env.EnvironmentPath.Scheme, wslenv.KeyNamespace)
	}
	if got := env.EnvironmentPath.String(); got != string(key) {
		t.Errorf("locator = %q, want %q", got, key)
	}
	if env.EnvID.ID != string(key) {
		t.Errorf("EnvID.ID = %q, want %q", env.EnvID.ID, key)
	}
}

func TestConvert_LocatorKeepsSpecialCharacters(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := systemRecord()
	record.PythonPath = "/opt/my env#2/bin/python?"
	env, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	if got := env.EnvironmentPath.String(); got != string(record.Key()) {
		t.Errorf("locator = %q, want %q", got, record.Key())
	}
}

func TestNew_DefaultOptions(t *testing.T) {
	t.Parallel()

	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New(Options{}) returned error: %v", err)
	}
	if c == nil {
		t.Fatal("New(Options{}) returned nil converter")
	}
}

func TestConvert_AcceptsRecordsWithoutActivationPath(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := systemRecord()
	record.EnvironmentPath = ""
	if _, err := c.Convert(context.Background(), record, record.Key()); err != nil {
		t.Errorf("Convert() system record without environmentPath: %v", err)
	}
}

func TestConvert_PreEpochTimestamps(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := venvRecord()
	record.CreatedAt = wslenv.NewTimestamp(time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC))
	record.LastUsedAt = wslenv.NewTimestamp(time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC))
	env, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() with pre-epoch timestamps: %v", err)
	}
	if env.DisplayName != ".venv (WSL: Ubuntu-22.04)" {
		t.Errorf("DisplayName = %q", env.DisplayName)
	}
}

func TestConvert_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*wslenv.EnvironmentRecord)
		key     func(wslenv.EnvironmentRecord) wslenv.EnvironmentKey
		wantErr error
	}{
		{
			name:    "missing interpreter path",
			mutate:  func(r *wslenv.EnvironmentRecord) { r.PythonPath = "" },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "missing distribution",
			mutate:  func(r *wslenv.EnvironmentRecord) { r.Distribution = "" },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "missing name",
			mutate:  func(r *wslenv.EnvironmentRecord) { r.Name = "" },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "unknown kind",
			mutate:  func(r *wslenv.EnvironmentRecord) { r.Kind = "conda" },
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "venv without environment path",
			mutate:  func(r *wslenv.EnvironmentRecord) { r.EnvironmentPath = "" },
			wantErr: errMissingEnvironmentPath,
		},
		{
			name:    "control character in path",
			mutate:  func(r *wslenv.EnvironmentRecord) { r.PythonPath = "/mnt/c/bad\x7f/bin/python" },
			wantErr: ErrInvalidLocator,
		},
		{
			name:   "foreign key namespace",
			mutate: func(*wslenv.EnvironmentRecord) {},
			key: func(r wslenv.EnvironmentRecord) wslenv.EnvironmentKey {
				return "conda:" + wslenv.EnvironmentKey(r.PythonPath)
			},
			wantErr: ErrInvalidLocator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, rec := newTestConverter(t, Options{})

			record := venvRecord()
			tt.mutate(&record)
			key := record.Key()
			if tt.key != nil {
				key = tt.key(record)
			}

			env, err := c.Convert(context.Background(), record, key)
			if env != nil {
				t.Errorf("Convert() returned %+v, want nil", env)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if !rec.Contains(slog.LevelWarn, "failed to convert") {
				t.Error("conversion failure should be logged")
			}
			if got := c.TryConvert(context.Background(), record, key); got != nil {
				t.Errorf("TryConvert() = %+v, want nil", got)
			}
		})
	}
}

func TestConvert_FactoryFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("host refused item")
	c, _ := newTestConverter(t, Options{
		Factory: ItemFactoryFunc(func(EnvironmentInfo, Manager) (*Environment, error) {
			return nil, boom
		}),
	})

	record := venvRecord()
	if _, err := c.Convert(context.Background(), record, record.Key()); !errors.Is(err, boom) {
		t.Errorf("Convert() error = %v, want %v", err, boom)
	}
}

func TestConvert_CustomLauncherAndManager(t *testing.T) {
	t.Parallel()

	manager := Manager{Name: "wsl-test", DisplayName: "WSL (test)"}
	var seen Manager
	c, _ := newTestConverter(t, Options{
		Launcher: "/mnt/c/Windows/System32/wsl.exe",
		Manager:  &manager,
		Factory: ItemFactoryFunc(func(info EnvironmentInfo, m Manager) (*Environment, error) {
			seen = m
			return NewDefaultItemFactory().CreateEnvironmentItem(info, m)
		}),
	})

	record := venvRecord()
	env, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	if env.Execution.Run.Executable != "/mnt/c/Windows/System32/wsl.exe" {
		t.Errorf("Run.Executable = %q", env.Execution.Run.Executable)
	}
	if env.Execution.Activation[0].Executable != "/mnt/c/Windows/System32/wsl.exe" {
		t.Errorf("Activation[0].Executable = %q", env.Execution.Activation[0].Executable)
	}
	if seen.Name != "wsl-test" || env.EnvID.ManagerID != "wsl-test" {
		t.Errorf("factory saw manager %+v, env manager %q", seen, env.EnvID.ManagerID)
	}
	if c.Manager().DisplayName != "WSL (test)" {
		t.Errorf("Manager() = %+v", c.Manager())
	}
}

func TestConvert_FreshValuePerCall(t *testing.T) {
	t.Parallel()
	c, _ := newTestConverter(t, Options{})

	record := venvRecord()
	first, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	second, err := c.Convert(context.Background(), record, record.Key())
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	if first == second || first.EnvironmentPath == second.EnvironmentPath {
		t.Error("each conversion should build a new environment")
	}

	first.Execution.ShellActivation["bash"][0].Args[0] = "mutated"
	if second.Execution.ShellActivation["bash"][0].Args[0] == "mutated" {
		t.Error("environments must not share command slices")
	}
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"3.11.4", "3.11.4"},
		{"3.12", "3.12.0"},
		{" 3.10.1 ", "3.10.1"},
		{"3.13.0rc1", "3.13.0rc1"},
	}
	for _, tt := range tests {
		if got := normalizeVersion(tt.in); got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTooltip(t *testing.T) {
	t.Parallel()

	record := venvRecord()
	got := tooltip(record, "3.11.4")
	for _, want := range []string{
		"**.venv** (venv)",
		"- Distribution: `Ubuntu-22.04`",
		"- Interpreter: `/mnt/c/proj/.venv/bin/python`",
		"- Environment: `/mnt/c/proj/.venv`",
		"- Workspace: `C:\\proj`",
		"- Version: 3.11.4",
		"- Last used: 2024-03-01 12:30 UTC",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("tooltip missing %q:\n%s", want, got)
		}
	}

	bare := tooltip(systemRecord(), "")
	if strings.Contains(bare, "Version") || strings.Contains(bare, "Last used") || strings.Contains(bare, "Workspace") {
		t.Errorf("tooltip should omit unknown fields:\n%s", bare)
	}
}
