// SPDX-License-Identifier: MPL-2.0

package convert

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invowk/wslenv/pkg/cueutil"
	"github.com/invowk/wslenv/pkg/wslenv"
)

//go:embed record_schema.cue
var recordSchemaSource string

// recordSchema validates records against #EnvironmentRecord.
type recordSchema struct {
	schema *cueutil.Schema
}

func newRecordSchema() (*recordSchema, error) {
	schema, err := cueutil.CompileSchema(recordSchemaSource, "record_schema.cue", "#EnvironmentRecord")
	if err != nil {
		return nil, err
	}
	return &recordSchema{schema: schema}, nil
}

// errMissingEnvironmentPath rejects activatable records that do not say
// where their activation scripts live.
var errMissingEnvironmentPath = errors.New("environmentPath is required for kind venv")

// validate checks record through its JSON form, the same shape the producer
// writes, then applies the kind-specific rules.
func (s *recordSchema) validate(record wslenv.EnvironmentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := s.schema.Validate(data, "record"); err != nil {
		return err
	}
	if record.Kind.HasActivation() && record.EnvironmentPath == "" {
		return errMissingEnvironmentPath
	}
	return nil
}
