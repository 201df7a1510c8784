package records

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Ref is a reference field in a request body. It accepts a JSON number or a
// numeric string, since HTML forms post identifiers as strings. An empty
// string is an explicit "no reference".
type Ref struct {
	ID    int64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*r = Ref{}
			return nil
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "reference " + strconv.Quote(raw), Type: refType}
	}
	*r = Ref{ID: id, Valid: true}
	return nil
}

// Int64 returns the referenced identifier, nil when unset.
func (r *Ref) Int64() *int64 {
	if r == nil || !r.Valid {
		return nil
	}
	id := r.ID
	return &id
}
