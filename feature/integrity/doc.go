// Package integrity checks that the service's surroundings are what it expects.
//
// # Checks Provided
//
//   - Schema: both item tables exist and carry exactly the expected columns
//     (cost items add supplier_id, invoice items must not have it), with compatible types.
//   - Storage: the snapshot bucket exists (supports ?fix=true).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the bucket check.
package integrity
