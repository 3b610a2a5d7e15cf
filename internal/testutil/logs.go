// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

type (
	// LogRecorder is a slog.Handler that keeps every record for later
	// assertions. It is safe for concurrent use.
	LogRecorder struct {
		mu      sync.Mutex
		records []slog.Record
	}
)

// NewLogger returns a logger that records at debug level and the recorder
// backing it.
func NewLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(rec), rec
}

// Enabled implements slog.Handler; every level is recorded.
func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec.Clone())
	return nil
}

// WithAttrs implements slog.Handler. Attributes are not tracked.
func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup implements slog.Handler. Groups are not tracked.
func (r *LogRecorder) WithGroup(string) slog.Handler { return r }

// Count returns how many records were logged at level.
func (r *LogRecorder) Count(level slog.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether any record at level has a message containing substr.
func (r *LogRecorder) Contains(level slog.Level, substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.Level == level && strings.Contains(rec.Message, substr) {
			return true
		}
	}
	return false
}

// Messages returns the messages of all records, in logging order.
func (r *LogRecorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]string, len(r.records))
	for i, rec := range r.records {
		msgs[i] = rec.Message
	}
	return msgs
}
