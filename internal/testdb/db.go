package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/platform/postgres"
)

// TestTimeout bounds connection checks during test setup.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for integration tests.
// TASKAPI_TEST_DB_URL takes precedence over DATABASE_URL; an empty
// result means no test database is available.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("TASKAPI_TEST_DB_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("DATABASE_URL")
}

// GetTestDBWithT returns an open, migrated test database connection.
// The test is skipped when no test database URL is configured, and the
// connection is closed automatically when the test finishes.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	// Skip the test if the database URL is not available
	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("TASKAPI_TEST_DB_URL or DATABASE_URL not set - skipping integration test")
	}

	// Open database connection
	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify the connection works
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	err = db.PingContext(ctx)
	require.NoError(t, err, "Database ping failed")

	// Bring the schema up to date from the embedded migrations
	require.NoError(t, ApplyMigrations(db), "Failed to apply migrations")

	// Register cleanup to close the database connection
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	return db
}

// ApplyMigrations runs the embedded goose migrations against the given
// database connection.
func ApplyMigrations(db *sql.DB) error {
	goose.SetBaseFS(postgres.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// WithTx runs the given test function inside a transaction that is
// rolled back when the function returns, keeping tests isolated from
// each other regardless of what they write.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	// Start a transaction
	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	// Ensure rollback happens after test completes or fails
	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	// Execute the test function with the transaction
	fn(t, tx)
}
