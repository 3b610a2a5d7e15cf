// SPDX-License-Identifier: MPL-2.0

package wslenv

// SchemaVersion is the only document version this module reads. Documents
// tagged with anything else are treated as empty.
const SchemaVersion = "1.0.0"

// Document is the whole shared file.
type Document struct {
	// Version tags the document layout.
	Version string `json:"version"`
	// Environments maps each record's key to the record.
	Environments map[EnvironmentKey]EnvironmentRecord `json:"environments"`
	// WorkspaceMapping maps a normalized workspace path to the ordered keys of
	// the environments found for it. Keys without a record are skipped.
	WorkspaceMapping map[string][]EnvironmentKey `json:"workspaceMapping"`
}

// NewDocument returns an empty document at the supported schema version.
func NewDocument() *Document {
	return &Document{
		Version:          SchemaVersion,
		Environments:     make(map[EnvironmentKey]EnvironmentRecord),
		WorkspaceMapping: make(map[string][]EnvironmentKey),
	}
}

// WorkspaceRecords resolves the keys mapped to workspace in mapping order,
// omitting keys that have no record.
func (d *Document) WorkspaceRecords(workspace string) []EnvironmentRecord {
	keys := d.WorkspaceMapping[workspace]
	records := make([]EnvironmentRecord, 0, len(keys))
	for _, key := range keys {
		if record, ok := d.Environments[key]; ok {
			records = append(records, record)
		}
	}
	return records
}
