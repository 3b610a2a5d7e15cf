// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/invowk/wslenv/pkg/wslenv"
)

// rawDocument mirrors wslenv.Document but defers record decoding so that one
// record with mistyped fields does not discard its siblings.
type rawDocument struct {
	Version          string                                    `json:"version"`
	Environments     map[wslenv.EnvironmentKey]json.RawMessage `json:"environments"`
	WorkspaceMapping map[string][]wslenv.EnvironmentKey        `json:"workspaceMapping"`
}

// Load returns the document, reading the file if nothing is cached. It never
// returns a nil document: on failure the document is empty and the error
// explains why (*LoadError or *VersionMismatchError). A missing file reports
// a *LoadError wrapping fs.ErrNotExist.
//
// Only successfully decoded documents at the supported version are cached;
// empty fallbacks are re-read on the next call. Concurrent callers share a
// single read.
func (s *Store) Load(ctx context.Context) (*wslenv.Document, error) {
	s.mu.RLock()
	if s.cached != nil {
		doc := s.cached
		s.mu.RUnlock()
		return doc, nil
	}
	epoch := s.epoch
	s.mu.RUnlock()

	v, err, _ := s.loads.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		doc, err := s.read(ctx)
		if err == nil {
			s.mu.Lock()
			if s.epoch == epoch {
				s.cached = doc
			}
			s.mu.Unlock()
		}
		return doc, err
	})
	return v.(*wslenv.Document), err
}

func (s *Store) read(ctx context.Context) (*wslenv.Document, error) {
	// The producer may not have run yet; make sure the shared directory is
	// there regardless. The file itself is never created here.
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.WarnContext(ctx, "failed to create store directory", "path", filepath.Dir(s.path), "error", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.DebugContext(ctx, "store file does not exist yet", "path", s.path)
		} else {
			s.logger.ErrorContext(ctx, "failed to read store file", "path", s.path, "error", err)
		}
		return wslenv.NewDocument(), &LoadError{Path: s.path, Op: "read", Err: err}
	}

	doc, err := s.decode(ctx, data)
	if err != nil {
		var mismatch *VersionMismatchError
		if errors.As(err, &mismatch) {
			s.logger.InfoContext(ctx, "ignoring store file with unsupported version",
				"path", s.path, "version", mismatch.Found, "expected", mismatch.Expected)
		} else {
			s.logger.ErrorContext(ctx, "failed to decode store file", "path", s.path, "error", err)
		}
		return wslenv.NewDocument(), err
	}

	s.logger.DebugContext(ctx, "loaded store file",
		"path", s.path, "environments", len(doc.Environments), "workspaces", len(doc.WorkspaceMapping))
	return doc, nil
}

func (s *Store) decode(ctx context.Context, data []byte) (*wslenv.Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: s.path, Op: "decode", Err: err}
	}

	if raw.Version != wslenv.SchemaVersion {
		return nil, &VersionMismatchError{Path: s.path, Found: raw.Version, Expected: wslenv.SchemaVersion}
	}

	doc := wslenv.NewDocument()
	for key, msg := range raw.Environments {
		var record wslenv.EnvironmentRecord
		if err := json.Unmarshal(msg, &record); err != nil {
			s.logger.WarnContext(ctx, "skipping undecodable environment record", "key", key, "error", err)
			continue
		}
		doc.Environments[key] = record
	}
	for workspace, keys := range raw.WorkspaceMapping {
		doc.WorkspaceMapping[workspace] = keys
	}

	return doc, nil
}
