// Package inventory implements the missing-part tracking feature.
//
// A record identifies a missing part by the triple (MSN, PNL, part number),
// normalized to upper case. The same triple may appear in several
// departments; the reconcile subpackage consolidates those into
// cross-department duplicate groups and plans spreadsheet imports.
//
// # Components
//
//   - Store: gorm-backed persistence for the inventory table.
//   - Service: orchestrates validation, imports, duplicate reports and
//     analytics on top of a short-lived snapshot cache.
//   - Handler: exposes the HTTP endpoints.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /inventory                      : list records, newest first
//   - POST   /inventory                      : create or update a record
//   - GET    /inventory/:id/scopes           : delete scope options
//   - DELETE /inventory/:id?scope=           : delete under a scope
//   - POST   /inventory/import               : reconcile and apply a batch
//   - GET    /inventory/duplicates           : cross-department duplicates
//   - POST   /inventory/duplicates/archive   : upload report to storage
//   - GET    /inventory/stats                : dashboard totals
//   - GET    /inventory/analytics            : chart series
package inventory
