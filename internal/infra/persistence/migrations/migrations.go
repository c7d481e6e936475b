// Package migrations applies the embedded PostgreSQL schema migrations.
package migrations

import (
	"database/sql"
	"embed"

	"projectforge/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed files/*.sql
var migrationFiles embed.FS

// Status describes the schema version of a database.
type Status struct {
	Version uint
	Latest  uint
	Dirty   bool
}

// UpToDate reports whether no migration is pending.
func (s Status) UpToDate() bool {
	return !s.Dirty && s.Version == s.Latest
}

// CheckDBMigrationStatus verifies that the database schema is up-to-date.
// Returns nil if the database is at the latest version.
func CheckDBMigrationStatus(db *sql.DB) error {
	status, err := ReadStatus(db)
	if err != nil {
		return err
	}
	if status.Dirty {
		return errors.Errorf("database is in dirty state at version %d (migration failed previously)", status.Version)
	}
	if status.Version < status.Latest {
		return errors.Errorf("database is at version %d but latest is %d (%d migrations behind)",
			status.Version, status.Latest, status.Latest-status.Version)
	}
	if status.Version > status.Latest {
		return errors.Errorf("database version %d is ahead of binary version %d (binary needs update)",
			status.Version, status.Latest)
	}

	return nil
}

// ReadStatus returns the current and the latest known schema version.
func ReadStatus(db *sql.DB) (Status, error) {
	latest, err := LatestVersion()
	if err != nil {
		return Status{}, err
	}
	m, err := newMigrate(db)
	if err != nil {
		return Status{}, err
	}
	// m is not closed: that would close the caller's db.
	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return Status{Latest: latest}, nil
		}

		return Status{}, errors.Wrap(err, "failed to get database version")
	}

	return Status{Version: version, Latest: latest, Dirty: dirty}, nil
}

// MigrateUp runs all pending migrations to bring database to latest version.
func MigrateUp(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}

		return errors.Wrap(err, "migration failed")
	}

	return nil
}

// LatestVersion returns the highest version of the embedded migrations.
func LatestVersion() (uint, error) {
	sourceDriver, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return 0, errors.Wrap(err, "failed to read migration files")
	}
	defer sourceDriver.Close()

	return getLatestVersion(sourceDriver)
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create source driver")
	}

	dbDriver, err := pgx.WithInstance(db, &pgx.Config{})
	if err != nil {
		sourceDriver.Close()

		return nil, errors.Wrap(err, "failed to create database driver")
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "pgx5", dbDriver)
	if err != nil {
		sourceDriver.Close()

		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return m, nil
}

func getLatestVersion(src source.Driver) (uint, error) {
	version, err := src.First()
	if err != nil {
		return 0, errors.Wrap(err, "no migrations found")
	}
	latest := version
	for {
		next, err := src.Next(latest)
		if err != nil {
			break
		}
		latest = next
	}

	return latest, nil
}
