// Package records holds the storage plumbing shared by the four record types.
//
// Repository is a generic gorm repository keyed by integer identifiers:
// insert, lookup, listing, merge update, unconditional delete and filtered
// search. Resolve performs the explicit join used when listings inline a
// referenced record; dangling references resolve to nothing instead of failing.
//
// Bind, Validate and ParseID turn request input into typed payloads, reporting
// every problem as an apperror.ValidationError.
package records
