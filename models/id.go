package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an Ello resource identifier.
//
// The API is not consistent about identifier encoding: most v2 resources send
// ids as JSON strings while older payloads (editorials, artist invites) send
// plain numbers. ID accepts both and always stores the decimal string form.
type ID string

// UnmarshalJSON decodes a JSON string or number into id.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}
