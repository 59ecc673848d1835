package database

import (
	"embed"
	"errors"
	"fmt"

	"movie-review/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationSource exposes the embedded schema history.
func MigrationSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Migrate brings the schema up to the latest embedded version. Running it
// against an up-to-date database is a no-op.
func Migrate(config utils.DatabaseConfig, log *zap.Logger) error {
	src, err := MigrationSource()
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, ConnString("pgx5", config))
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("Failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}

	log.Info("Database schema up to date",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)

	return nil
}
