// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// The task service forwards every operation to the task store unchanged in
// semantics, adding only the shape work that belongs above the store: the
// paginated-result envelope and translation of store sentinels into
// service-level error context. Unexpected store failures are wrapped in
// TaskServiceError and propagated, never swallowed into empty results, so
// the API layer can distinguish "no data" from "operation failed."
package service
