// Package snapshot exports the record store to object storage.
//
// A snapshot is a folder snapshots/<uuid>/ holding animals.json,
// employees.json, events.json, souvenirs.json, counters.json and a
// manifest.json. Collections are read concurrently.
//
// # HTTP Endpoints
//
//   - POST /snapshots : Create a snapshot (201 with the manifest).
//   - GET /snapshots : List snapshot identifiers.
//
// The feature is only loaded when storage.enabled is true.
package snapshot
