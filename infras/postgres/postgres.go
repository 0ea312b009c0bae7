package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"time"
	"todoapi/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection is the process wide pool shared by every request.
type Connection struct {
	DB *sqlx.DB
}

// New opens the pool described by the configuration. The returned cleanup
// closes it and is meant to run once the HTTP server has drained.
func New(config *config.Config) (*Connection, func(), error) {
	db, err := CreatePostgresConnection(config)
	if err != nil {
		return nil, nil, err
	}

	conn := &Connection{DB: db}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database pool")

			return
		}

		log.Info().Msg("Database pool closed")
	}

	return conn, cleanup, nil
}

// Ping verifies a connection can be taken from the pool.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// CreatePostgresConnection connects with retries, waiting between attempts
// so the service can start alongside the database.
func CreatePostgresConnection(config *config.Config) (*sqlx.DB, error) {
	dbConfig := config.DB
	maxRetry := max(dbConfig.MaxRetry, 1)

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, dbConfig.URL)
		if err == nil {
			sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
			sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
			sqlDB.SetConnMaxLifetime(time.Duration(dbConfig.ConnMaxLifetimeSeconds) * time.Second)

			log.
				Info().
				Int("maxOpenConns", dbConfig.MaxOpenConns).
				Int("maxIdleConns", dbConfig.MaxIdleConns).
				Msg("Connected to database")

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Int("maxRetry", maxRetry).
			Msg("Failed connecting to database, retrying")

		if retry < maxRetry-1 {
			time.Sleep(time.Duration(dbConfig.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed connecting to database after %d attempts: %w", maxRetry, lastErr)
}
