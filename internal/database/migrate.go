package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

// Migrate applies the pending goose migrations found under dir of migrations.
// Applied versions are recorded in goose_db_version and skipped on later runs.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS, dir string) ([]*goose.MigrationResult, error) {
	return migrate(ctx, goose.DialectMySQL, db.DB, migrations, dir)
}

func migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB, migrations fs.FS, dir string) ([]*goose.MigrationResult, error) {
	migrationsDir, err := fs.Sub(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.Sub(%s) > %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("goose.NewProvider > %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider.Up > %w", err)
	}
	return results, nil
}
