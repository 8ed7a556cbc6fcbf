// Package postgres provides PostgreSQL implementations of the store
// interfaces, along with the embedded SQL migrations that define the
// physical schema. All implementations work over store.DBTX so they can
// run against either a connection pool or a transaction.
package postgres
