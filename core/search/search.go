package search

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"zoo-manager/core/apperror"
	"zoo-manager/core/utils"

	"gorm.io/gorm/clause"
)

// Operator is a comparison token accepted in search requests.
type Operator string

const (
	Eq  Operator = "="
	Gt  Operator = ">"
	Lt  Operator = "<"
	Gte Operator = ">="
	Lte Operator = "<="
)

// AllOperators lists every supported operator.
var AllOperators = []Operator{Eq, Gt, Lt, Gte, Lte}

// ParseOperator validates a token. An empty token means equality.
func ParseOperator(token string) (Operator, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Eq, nil
	}
	op := Operator(token)
	if !slices.Contains(AllOperators, op) {
		return "", apperror.Invalid("operator", fmt.Sprintf("unsupported operator %q", token))
	}
	return op, nil
}

// Kind is the value type a searchable column holds.
type Kind int

const (
	String Kind = iota
	Number
	Integer
	Time
)

// Field maps a JSON field name onto a column.
type Field struct {
	Column string
	Kind   Kind
}

// Schema lists the searchable fields of one record type, keyed by JSON name.
type Schema map[string]Field

// Request is the body of POST /{entity}/search.
type Request struct {
	Field    string `json:"field"`
	Operator string `json:"operator,omitempty"`
	Value    any    `json:"value"`
}

// Filter is a resolved single-column predicate.
type Filter struct {
	Column string
	Op     Operator
	Value  any
}

// Expression renders the filter as a gorm clause.
func (f Filter) Expression() clause.Expression {
	col := clause.Column{Name: f.Column}
	switch f.Op {
	case Gt:
		return clause.Gt{Column: col, Value: f.Value}
	case Lt:
		return clause.Lt{Column: col, Value: f.Value}
	case Gte:
		return clause.Gte{Column: col, Value: f.Value}
	case Lte:
		return clause.Lte{Column: col, Value: f.Value}
	default:
		return clause.Eq{Column: col, Value: f.Value}
	}
}

// Build resolves req against the schema, accepting only the allowed operators.
// ok is false when the field is not part of the schema; such a search matches nothing.
func (s Schema) Build(req Request, allowed ...Operator) (filter Filter, ok bool, err error) {
	if len(allowed) == 0 {
		allowed = AllOperators
	}

	op, err := ParseOperator(req.Operator)
	if err != nil {
		return Filter{}, false, err
	}
	if !slices.Contains(allowed, op) {
		return Filter{}, false, apperror.Invalid("operator", fmt.Sprintf("operator %q is not supported for this collection", op))
	}

	name := strings.TrimSpace(req.Field)
	if name == "" {
		return Filter{}, false, apperror.Invalid("field", "is required")
	}

	field, known := s[name]
	if !known {
		return Filter{}, false, nil
	}

	if req.Value == nil {
		if op != Eq {
			return Filter{}, false, apperror.Invalid("value", "is required")
		}
		return Filter{Column: field.Column, Op: op}, true, nil
	}

	value, err := Coerce(field.Kind, req.Value)
	if err != nil {
		return Filter{}, false, err
	}
	return Filter{Column: field.Column, Op: op, Value: value}, true, nil
}

// Coerce converts a decoded JSON value to the column kind.
// Numeric strings become numbers for numeric columns, so "10" compares as 10.
func Coerce(kind Kind, raw any) (any, error) {
	switch raw.(type) {
	case map[string]any, []any:
		return nil, apperror.Invalid("value", "must be a scalar")
	}

	switch kind {
	case Number:
		if f, ok := utils.ToFloat(raw); ok {
			return f, nil
		}
		return nil, apperror.Invalid("value", fmt.Sprintf("%v is not a number", raw))
	case Integer:
		if i, ok := utils.ToInt64(raw); ok {
			return i, nil
		}
		return nil, apperror.Invalid("value", fmt.Sprintf("%v is not an integer", raw))
	case Time:
		s, isString := raw.(string)
		if !isString {
			return nil, apperror.Invalid("value", "must be an RFC 3339 timestamp")
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, apperror.Invalid("value", "must be an RFC 3339 timestamp")
		}
		// Stored timestamps are UTC.
		return t.UTC(), nil
	default:
		return utils.ToString(raw), nil
	}
}
