// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/invowk/wslenv/pkg/wslenv"

	"golang.org/x/sync/singleflight"
)

type (
	// Options configures a Store.
	Options struct {
		// Path is the shared file location. Empty means DefaultPath().
		Path string
		// Logger receives load diagnostics. Nil means slog.Default().
		Logger *slog.Logger
	}

	// Store is a read-only, cached view of the shared environment file.
	// It is safe for concurrent use.
	Store struct {
		path   string
		logger *slog.Logger

		loads singleflight.Group

		mu     sync.RWMutex
		cached *wslenv.Document
		// epoch is bumped by ClearCache so that a load started before the
		// clear cannot repopulate the cache afterwards.
		epoch uint64
	}
)

// New creates a Store. It fails only when no path is given and the default
// location cannot be determined.
func New(opts Options) (*Store, error) {
	p := opts.Path
	if p == "" {
		var err error
		if p, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{path: p, logger: logger}, nil
}

// Path returns the resolved location of the shared file.
func (s *Store) Path() string {
	return s.path
}

// AllEnvironments returns every record in the document, keyed by identity
// key. The returned map is a copy owned by the caller.
func (s *Store) AllEnvironments(ctx context.Context) map[wslenv.EnvironmentKey]wslenv.EnvironmentRecord {
	return maps.Clone(s.document(ctx).Environments)
}

// WorkspaceEnvironments returns the records mapped to workspacePath, in
// mapping order. The path is normalized first; keys without a record are
// skipped. An unknown workspace yields an empty slice.
func (s *Store) WorkspaceEnvironments(ctx context.Context, workspacePath string) []wslenv.EnvironmentRecord {
	return s.document(ctx).WorkspaceRecords(NormalizeWorkspacePath(workspacePath))
}

// Environment looks up a single record.
func (s *Store) Environment(ctx context.Context, key wslenv.EnvironmentKey) (wslenv.EnvironmentRecord, bool) {
	record, ok := s.document(ctx).Environments[key]
	return record, ok
}

// HasEnvironment reports whether a record exists for key.
func (s *Store) HasEnvironment(ctx context.Context, key wslenv.EnvironmentKey) bool {
	_, ok := s.Environment(ctx, key)
	return ok
}

// ClearCache drops the cached document. The next query reads the file again.
func (s *Store) ClearCache() {
	s.mu.Lock()
	s.cached = nil
	s.epoch++
	s.mu.Unlock()
}

// document returns the cached document, loading it if needed. Load failures
// have already been logged and yield an empty document.
func (s *Store) document(ctx context.Context) *wslenv.Document {
	doc, _ := s.Load(ctx) // failures are already logged
	return doc
}
