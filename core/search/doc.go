// Package search turns {field, operator, value} requests into column predicates.
//
// Each record type declares a Schema of searchable fields. A request naming a
// field outside the schema matches nothing rather than failing. Values are
// coerced to the column kind before comparison, and unknown operators are
// rejected with a validation error.
package search
