// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates JSON or CUE input against an embedded CUE schema.
//
// A Schema is compiled once and reused for every input:
//
//	//go:embed config_schema.cue
//	var configSchema string
//
//	schema, err := cueutil.CompileSchema(configSchema, "config_schema.cue", "#Config")
//	if err != nil {
//	    return err
//	}
//	var values map[string]any
//	if err := schema.Decode(data, "config.cue", &values, cueutil.WithConcrete(false)); err != nil {
//	    return err // includes the field path, e.g. "config.cue: log_level: ..."
//	}
package cueutil
