package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"todoapi/config"
	"todoapi/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const migrationsTableParam = "x-migrations-table"

// connectionString points golang-migrate at the configured migrations table.
func connectionString(config *config.Config) (string, error) {
	dsn, err := url.Parse(config.DB.URL)
	if err != nil {
		return "", fmt.Errorf("error parsing database url: %w", err)
	}

	if config.DB.MigrationTable != "" {
		query := dsn.Query()
		query.Set(migrationsTableParam, config.DB.MigrationTable)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	dsn, err := connectionString(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Up applies every pending migration. Running it against an up to date
// schema is a no-op.
func Up(config *config.Config) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		sourceErr, dbErr := mig.Close()
		if sourceErr != nil || dbErr != nil {
			log.Warn().AnErr("source", sourceErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}
