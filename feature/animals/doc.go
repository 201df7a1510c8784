// Package animals implements the animal records feature.
//
// # HTTP Endpoints
//
//   - POST /animals : Create an animal (201, or 400 on validation failure).
//   - GET /animals : List every animal.
//   - GET /animals/:id : Fetch one animal (404 when absent).
//   - PUT /animals/:id : Merge fields; omitted or empty fields keep their value.
//   - PUT /animals/:id/health : Set healthStatus only.
//   - DELETE /animals/:id : Delete; succeeds for unknown identifiers too.
//   - POST /animals/search : {field, operator, value} with =, >, <, >=, <=.
//
// Identifiers come from the "animal" sequence of core/sequence.
package animals
