package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a backend primary key. The backend emits integers for most
// entities and strings for a few; both decode to the same value.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("backend id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// RefID returns a pointer to id, or nil for the empty id. Used for
// nullable foreign keys.
func RefID(id string) *ID {
	if id == "" {
		return nil
	}
	v := ID(id)
	return &v
}
