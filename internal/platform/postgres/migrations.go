package postgres

import "embed"

// Migrations holds the embedded goose SQL migrations that define the
// physical schema. cmd/server applies them with goose.SetBaseFS.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the path of the migrations inside the embedded
// filesystem, passed to goose alongside Migrations.
const MigrationsDir = "migrations"
