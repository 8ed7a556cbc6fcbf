// Package testdb provides helpers for database-backed integration
// tests: acquiring a connection from the environment, applying the
// embedded migrations, and running test bodies inside rolled-back
// transactions for isolation.
package testdb
