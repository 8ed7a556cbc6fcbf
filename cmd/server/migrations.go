package main

import (
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/config"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/platform/postgres"
)

// handleMigrations executes the requested migration command against
// the configured database using the embedded SQL migrations.
// Supported commands: up, down, status.
func handleMigrations(cfg *config.Config, migrateCmd string) error {
	switch migrateCmd {
	case "up", "down", "status":
	default:
		return fmt.Errorf("unknown migration command %q (want up, down, or status)", migrateCmd)
	}

	goose.SetBaseFS(postgres.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close migration database connection", "error", err)
		}
	}()

	slog.Info("Executing migrations", "command", migrateCmd)

	switch migrateCmd {
	case "up":
		err = goose.Up(db, postgres.MigrationsDir)
	case "down":
		err = goose.Down(db, postgres.MigrationsDir)
	case "status":
		err = goose.Status(db, postgres.MigrationsDir)
	}
	if err != nil {
		return fmt.Errorf("migration command %q failed: %w", migrateCmd, err)
	}

	return nil
}
