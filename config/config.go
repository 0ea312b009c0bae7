package config

import (
	"fmt"
	"sync"
	"todoapi/shared/constant"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Host     string `envconfig:"HOST"      default:"127.0.0.1"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Shutdown struct {
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name    string `envconfig:"NAME"    default:"todoapi"`
		Version string `envconfig:"VERSION" default:"1.0.0"`
		CORS    struct {
			Enable           bool     `envconfig:"ENABLE"`
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Accept,Content-Type,X-Request-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	DB struct {
		URL                    string `envconfig:"URL"                        required:"true"`
		MaxOpenConns           int    `envconfig:"MAX_OPEN_CONNS"             default:"10"`
		MaxIdleConns           int    `envconfig:"MAX_IDLE_CONNS"             default:"10"`
		ConnMaxLifetimeSeconds int    `envconfig:"CONN_MAX_LIFETIME_SECONDS"  default:"300"`
		MaxRetry               int    `envconfig:"MAX_RETRY"                  default:"5"`
		RetryWaitTime          int    `envconfig:"RETRY_WAIT_TIME"            default:"2"`
		AutoMigrate            bool   `envconfig:"AUTO_MIGRATE"`
		MigrationTable         string `envconfig:"MIGRATION_TABLE"            default:"schema_migrations"`
	} `envconfig:"DATABASE"`

	Otel struct {
		Endpoint string `envconfig:"ENDPOINT"`
	} `envconfig:"OTEL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// IsDevelopment reports whether the server runs with development conveniences
// (console logs, immediate shutdown).
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == constant.ServerEnvDevelopment
}
