package records

import (
	"bytes"
	"encoding/json"

	"zoo-manager/core/apperror"
)

// Optional is an update field that tells an absent key apart from an
// explicit null. It must be used by value so the decoder sees the null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Map converts the value of a present, non-null Optional.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	out := Optional[U]{Set: o.Set, Null: o.Null}
	if o.Set && !o.Null {
		out.Value = fn(o.Value)
	}
	return out
}

// Changes collects the columns of a partial update.
type Changes struct {
	columns map[string]any
	err     error
}

func (c *Changes) put(column string, v any) {
	if c.columns == nil {
		c.columns = map[string]any{}
	}
	c.columns[column] = v
}

// Required writes a NOT NULL column. A null is rejected under field.
func Required[T any](c *Changes, field, column string, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		if c.err == nil {
			c.err = apperror.Invalid(field, "must not be null")
		}
		return
	}
	c.put(column, o.Value)
}

// Nullable writes a column that may hold NULL. A null clears it.
func Nullable[T any](c *Changes, column string, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		c.put(column, nil)
		return
	}
	c.put(column, o.Value)
}

// Columns returns the collected columns or the first rejected field.
func (c *Changes) Columns() (map[string]any, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.columns == nil {
		return map[string]any{}, nil
	}
	return c.columns, nil
}
