// Package employees implements the staff records feature.
//
// An employee may reference an animal through assignedAnimal. The reference is
// never validated: listing resolves it opportunistically into resolvedAnimal,
// which stays null when the animal no longer exists.
//
// # HTTP Endpoints
//
//   - POST /employees, GET /employees, GET /employees/:id
//   - PUT /employees/:id : present fields overwrite the stored ones.
//   - DELETE /employees/:id
//   - POST /employees/search : {field, value}, equality only.
package employees
