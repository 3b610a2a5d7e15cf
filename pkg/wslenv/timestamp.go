// SPDX-License-Identifier: MPL-2.0

package wslenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a point in time as written by the producer. It is stored as
// epoch milliseconds; RFC 3339 strings are accepted on input as well since
// older producers serialized dates that way.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, truncated to millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond)}
}

// MarshalJSON encodes the timestamp as epoch milliseconds. The zero value
// encodes as 0.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(t.UnixMilli())
}

// UnmarshalJSON accepts epoch milliseconds, an RFC 3339 string, or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*t = Timestamp{}
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		*t = Timestamp{Time: parsed}
		return nil
	}

	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	if ms == 0 {
		*t = Timestamp{}
		return nil
	}
	*t = Timestamp{Time: time.UnixMilli(int64(ms))}
	return nil
}
