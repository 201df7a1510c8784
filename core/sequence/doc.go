// Package sequence implements the identifier allocator.
//
// Every record type draws its integer identifiers from a named counter in the
// counters table. NextValue performs the increment and the read as one
// transaction so that concurrent creations of the same type never receive the
// same identifier. Identifiers are never reused, even when the insert that
// requested them fails afterwards.
package sequence
