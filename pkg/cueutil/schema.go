// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled CUE definition. It is safe for concurrent use; a
// cue.Context is not, so all evaluation happens under a mutex.
type Schema struct {
	mu  sync.Mutex
	ctx *cue.Context
	def cue.Value
}

// CompileSchema compiles source and looks up definition (e.g. "#Config").
// Errors here are programming errors in the embedded schema.
func CompileSchema(source, filename, definition string) (*Schema, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(source, cue.Filename(filename))
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema %s: %w", filename, schemaValue.Err())
	}

	def := schemaValue.LookupPath(cue.ParsePath(definition))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", definition, def.Err())
	}

	return &Schema{ctx: ctx, def: def}, nil
}

// Validate checks data (CUE or JSON) against the schema. filename only
// appears in error messages.
func (s *Schema) Validate(data []byte, filename string, opts ...Option) error {
	return s.Decode(data, filename, nil, opts...)
}

// Decode validates data and decodes the unified value into out. A nil out
// only validates.
func (s *Schema) Decode(data []byte, filename string, out any, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value := s.ctx.CompileBytes(data, cue.Filename(filename))
	if value.Err() != nil {
		return FormatError(value.Err(), filename)
	}

	unified := s.def.Unify(value)
	var validateOpts []cue.Option
	if options.concrete {
		validateOpts = append(validateOpts, cue.Concrete(true))
	}
	if err := unified.Validate(validateOpts...); err != nil {
		return FormatError(err, filename)
	}

	if out == nil {
		return nil
	}
	if err := unified.Decode(out); err != nil {
		return FormatError(err, filename)
	}
	return nil
}
