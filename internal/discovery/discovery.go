// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"github.com/invowk/wslenv/internal/convert"
	"github.com/invowk/wslenv/internal/store"
	"github.com/invowk/wslenv/pkg/wslenv"
)

type (
	// Source is the record store the façade reads from. *store.Store
	// implements it.
	Source interface {
		Path() string
		Load(ctx context.Context) (*wslenv.Document, error)
		AllEnvironments(ctx context.Context) map[wslenv.EnvironmentKey]wslenv.EnvironmentRecord
		WorkspaceEnvironments(ctx context.Context, workspacePath string) []wslenv.EnvironmentRecord
		Environment(ctx context.Context, key wslenv.EnvironmentKey) (wslenv.EnvironmentRecord, bool)
		ClearCache()
	}

	// Discovery lists WSL environments for the host.
	Discovery struct {
		source    Source
		converter *convert.Converter
		logger    *slog.Logger
	}

	// Option configures a Discovery.
	Option func(*Discovery)
)

// WithLogger sets the logger for discovery summaries. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discovery) {
		d.logger = logger
	}
}

// New creates a Discovery over source, converting records with converter.
func New(source Source, converter *convert.Converter, opts ...Option) *Discovery {
	d := &Discovery{
		source:    source,
		converter: converter,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscoverEnvironments returns every convertible environment in the store,
// ordered by key. Records that fail conversion are logged and skipped.
func (d *Discovery) DiscoverEnvironments(ctx context.Context) []*convert.Environment {
	envs, _ := d.convertAll(ctx, d.source.AllEnvironments(ctx))
	return envs
}

// WorkspaceEnvironments returns the convertible environments mapped to
// workspacePath, in the store's mapping order.
func (d *Discovery) WorkspaceEnvironments(ctx context.Context, workspacePath string) []*convert.Environment {
	envs, _ := d.convertRecords(ctx, d.source.WorkspaceEnvironments(ctx, workspacePath))
	return envs
}

// Discover is DiscoverEnvironments with diagnostics for the store and for
// every skipped record.
func (d *Discovery) Discover(ctx context.Context) Result {
	doc, diags := d.load(ctx)
	envs, skipped := d.convertAll(ctx, doc.Environments)
	return Result{Environments: envs, Diagnostics: append(diags, skipped...), Document: doc}
}

// DiscoverWorkspace is WorkspaceEnvironments with diagnostics.
func (d *Discovery) DiscoverWorkspace(ctx context.Context, workspacePath string) Result {
	doc, diags := d.load(ctx)
	records := doc.WorkspaceRecords(store.NormalizeWorkspacePath(workspacePath))
	envs, skipped := d.convertRecords(ctx, records)
	return Result{Environments: envs, Diagnostics: append(diags, skipped...), Document: doc}
}

// Resolve converts the single record stored under key. It reports false when
// the key is unknown or the record cannot be converted.
func (d *Discovery) Resolve(ctx context.Context, key wslenv.EnvironmentKey) (*convert.Environment, bool) {
	record, ok := d.source.Environment(ctx, key)
	if !ok {
		return nil, false
	}
	env := d.converter.TryConvert(ctx, record, key)
	return env, env != nil
}

// Refresh drops the store's cached document so that the next call sees the
// producer's latest writes.
func (d *Discovery) Refresh() {
	d.source.ClearCache()
}

func (d *Discovery) convertAll(ctx context.Context, records map[wslenv.EnvironmentKey]wslenv.EnvironmentRecord) ([]*convert.Environment, []Diagnostic) {
	envs := make([]*convert.Environment, 0, len(records))
	var diags []Diagnostic
	for _, key := range slices.Sorted(maps.Keys(records)) {
		env, err := d.converter.Convert(ctx, records[key], key)
		if err != nil {
			diags = append(diags, skippedRecord(key, err))
			continue
		}
		envs = append(envs, env)
	}
	d.logger.DebugContext(ctx, "discovered environments", "count", len(envs), "skipped", len(diags))
	return envs, diags
}

func (d *Discovery) convertRecords(ctx context.Context, records []wslenv.EnvironmentRecord) ([]*convert.Environment, []Diagnostic) {
	envs := make([]*convert.Environment, 0, len(records))
	var diags []Diagnostic
	for _, record := range records {
		key := record.Key()
		env, err := d.converter.Convert(ctx, record, key)
		if err != nil {
			diags = append(diags, skippedRecord(key, err))
			continue
		}
		envs = append(envs, env)
	}
	d.logger.DebugContext(ctx, "discovered workspace environments", "count", len(envs), "skipped", len(diags))
	return envs, diags
}

// load reads the document and turns a load failure into a diagnostic. The
// document is never nil.
func (d *Discovery) load(ctx context.Context) (*wslenv.Document, []Diagnostic) {
	doc, err := d.source.Load(ctx)
	if doc == nil {
		doc = wslenv.NewDocument()
	}
	if err == nil {
		return doc, nil
	}

	diag := Diagnostic{
		Severity: SeverityError,
		Code:     CodeStoreUnreadable,
		Message:  fmt.Sprintf("failed to read environment store: %v", err),
		Path:     d.source.Path(),
		Cause:    err,
	}
	var mismatch *store.VersionMismatchError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		diag.Severity = SeverityWarning
		diag.Code = CodeStoreMissing
		diag.Message = "environment store does not exist yet"
	case errors.As(err, &mismatch):
		diag.Severity = SeverityWarning
		diag.Code = CodeStoreVersionMismatch
		diag.Message = fmt.Sprintf("environment store has version %q, expected %q", mismatch.Found, mismatch.Expected)
	}
	return doc, []Diagnostic{diag}
}

func skippedRecord(key wslenv.EnvironmentKey, err error) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeRecordSkipped,
		Message:  fmt.Sprintf("skipped environment %s: %v", key, err),
		Key:      key,
		Cause:    err,
	}
}
