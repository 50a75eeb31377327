package pg

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-finder/db"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RunMigrations applies the embedded schema migrations to the database at connStr.
func RunMigrations(connStr string) error {
	dbURL, err := migrateURL(connStr)
	if err != nil {
		return err
	}

	src, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return fmt.Errorf("failed to init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Database schema is up to date", "version", version, "dirty", dirty)
	return nil
}

// migrateURL rewrites a postgres:// url to the scheme of the pgx/v5 migrate driver.
func migrateURL(connStr string) (string, error) {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(connStr, prefix) {
			return "pgx5://" + strings.TrimPrefix(connStr, prefix), nil
		}
	}
	return "", fmt.Errorf("migrations need a postgres:// url connection string")
}
