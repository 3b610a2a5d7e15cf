// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/invowk/wslenv/pkg/wslenv"

	"github.com/Masterminds/semver/v3"
)

type (
	// Options configures a Converter. Zero values select the defaults.
	Options struct {
		// Launcher is the WSL launcher executable (default DefaultLauncher).
		Launcher string
		// Manager is the owner handle passed to the factory (default DefaultManager).
		Manager *Manager
		// Factory materializes environment items (default NewDefaultItemFactory()).
		Factory ItemFactory
		// Logger receives conversion failures (default slog.Default()).
		Logger *slog.Logger
	}

	// Converter maps records to environment items. It is safe for
	// concurrent use.
	Converter struct {
		launcher string
		manager  Manager
		factory  ItemFactory
		logger   *slog.Logger
		schema   *recordSchema
	}
)

// New creates a Converter. It only fails if the embedded record schema does
// not compile.
func New(opts Options) (*Converter, error) {
	schema, err := newRecordSchema()
	if err != nil {
		return nil, err
	}

	c := &Converter{
		launcher: opts.Launcher,
		manager:  DefaultManager,
		factory:  opts.Factory,
		logger:   opts.Logger,
		schema:   schema,
	}
	if c.launcher == "" {
		c.launcher = DefaultLauncher
	}
	if opts.Manager != nil {
		c.manager = *opts.Manager
	}
	if c.factory == nil {
		c.factory = NewDefaultItemFactory()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// Manager returns the owner handle environments are created under.
func (c *Converter) Manager() Manager {
	return c.manager
}

// Convert builds the environment item for record stored under key. Failures
// are logged and returned; the caller decides whether to skip the record.
func (c *Converter) Convert(ctx context.Context, record wslenv.EnvironmentRecord, key wslenv.EnvironmentKey) (*Environment, error) {
	env, err := c.convert(record, key)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to convert environment record", "key", key, "error", err)
		return nil, err
	}
	return env, nil
}

// TryConvert is Convert for callers that only care whether an item exists.
func (c *Converter) TryConvert(ctx context.Context, record wslenv.EnvironmentRecord, key wslenv.EnvironmentKey) *Environment {
	env, _ := c.Convert(ctx, record, key) // logged by Convert
	return env
}

func (c *Converter) convert(record wslenv.EnvironmentRecord, key wslenv.EnvironmentKey) (*Environment, error) {
	if err := c.schema.validate(record); err != nil {
		return nil, &InvalidRecordError{Key: key, Err: err}
	}

	locator, err := environmentLocator(key)
	if err != nil {
		return nil, err
	}

	version := normalizeVersion(record.Version)
	info := EnvironmentInfo{
		Name:             record.Name,
		DisplayName:      fmt.Sprintf("%s (WSL: %s)", record.Name, record.Distribution),
		ShortDisplayName: fmt.Sprintf("%s (%s)", record.Name, record.Distribution),
		DisplayPath:      record.Distribution + ":" + record.PythonPath,
		Version:          version,
		Description:      record.PythonPath,
		Tooltip:          tooltip(record, version),
		EnvironmentPath:  locator,
		Execution:        buildExecutionInfo(record, c.launcher),
		SysPrefix:        record.SysPrefix,
	}

	env, err := c.factory.CreateEnvironmentItem(info, c.manager)
	if err != nil {
		return nil, fmt.Errorf("create environment item %q: %w", key, err)
	}
	if env == nil {
		return nil, fmt.Errorf("create environment item %q: factory returned no item", key)
	}
	return env, nil
}

// environmentLocator turns key into a URI with scheme "wsl" whose String()
// is exactly key. url.Parse is only used to reject strings that are not
// URI-safe; the URL itself is assembled directly because Parse would treat
// '?' and '#' in interpreter paths as query and fragment.
func environmentLocator(key wslenv.EnvironmentKey) (*url.URL, error) {
	if _, _, err := wslenv.ParseEnvironmentKey(key); err != nil {
		return nil, &InvalidLocatorError{Key: key, Err: err}
	}
	if _, err := url.Parse(string(key)); err != nil {
		return nil, &InvalidLocatorError{Key: key, Err: err}
	}

	_, opaque, _ := strings.Cut(string(key), ":")
	return &url.URL{Scheme: wslenv.KeyNamespace, Opaque: opaque}, nil
}

// normalizeVersion renders semver-compatible versions as major.minor.patch
// and passes anything else (e.g. "3.13.0rc1") through unchanged.
func normalizeVersion(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return v.String()
}

func tooltip(record wslenv.EnvironmentRecord, version string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**%s** (%s)\n\n", record.Name, record.Kind)
	fmt.Fprintf(&sb, "- Distribution: `%s`\n", record.Distribution)
	fmt.Fprintf(&sb, "- Interpreter: `%s`\n", record.PythonPath)
	if record.EnvironmentPath != "" {
		fmt.Fprintf(&sb, "- Environment: `%s`\n", record.EnvironmentPath)
	}
	if record.WorkspacePath != "" {
		fmt.Fprintf(&sb, "- Workspace: `%s`\n", record.WorkspacePath)
	}
	if version != "" {
		fmt.Fprintf(&sb, "- Version: %s\n", version)
	}
	if !record.LastUsedAt.IsZero() {
		fmt.Fprintf(&sb, "- Last used: %s\n", record.LastUsedAt.UTC().Format("2006-01-02 15:04 MST"))
	}

	return sb.String()
}
