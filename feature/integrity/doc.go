// Package integrity reports on the consistency of the stored records.
//
// Animal references held by employees and events are never enforced, so a
// deleted animal leaves them dangling. This package finds those records and
// also verifies the database schema and the object storage layout.
//
// # Checks Provided
//
//   - References: employees.assignedAnimal and events.animal pointing at no animal.
//   - Schema: every model column exists in its table, explicit type: tags match.
//   - Structure: the public/ and snapshots/ folders exist in the bucket.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/references : Runs the reference check.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/structure : Runs the structure check (supports ?fix=true).
package integrity
