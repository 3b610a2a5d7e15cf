// SPDX-License-Identifier: MPL-2.0

package wslenv

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		want     time.Time
		wantZero bool
		wantErr  bool
	}{
		{name: "epoch millis", input: "1709296200000", want: want},
		{name: "rfc3339 string", input: `"2024-03-01T12:30:00Z"`, want: want},
		{name: "rfc3339 with millis", input: `"2024-03-01T12:30:00.000Z"`, want: want},
		{name: "null", input: "null", wantZero: true},
		{name: "zero", input: "0", wantZero: true},
		{name: "empty string", input: `""`, wantZero: true},
		{name: "garbage string", input: `"yesterday"`, wantErr: true},
		{name: "boolean", input: "true", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantZero {
				if !ts.IsZero() {
					t.Errorf("expected zero timestamp, got %v", ts.Time)
				}
				return
			}
			if !ts.Equal(tt.want) {
				t.Errorf("got %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	t.Parallel()

	ts := NewTimestamp(time.UnixMilli(1709296200123))
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	if string(data) != "1709296200123" {
		t.Errorf("Marshal() = %s, want 1709296200123", data)
	}

	data, err = json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	if string(data) != "0" {
		t.Errorf("Marshal(zero) = %s, want 0", data)
	}
}
