package config

import (
	"errors"
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration. Values come from the
// environment; unset keys fall back to the tag defaults.
type Config struct {
	DBDriver         string        `env:"DB_DRIVER,default=sqlite"`
	DBPath           string        `env:"DB_PATH,default=chat_app.db"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	DBQueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT,default=3s"`
	HTTPAddress      string        `env:"HTTP_ADDRESS,default=:8000"`
	GRPCAddress      string        `env:"GRPC_ADDRESS,default=:50051"`
	HealthInterval   time.Duration `env:"HEALTH_INTERVAL,default=10s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
	BcryptCost       int           `env:"BCRYPT_COST,default=10"`
	MaxMessageLength int           `env:"MAX_MESSAGE_LENGTH,default=4096"`
	GinMode          string        `env:"GIN_MODE,default=release"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var problems []error
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			problems = append(problems, errors.New("DB_PATH must not be empty for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		problems = append(problems, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", c.DBDriver))
	}
	if c.DBQueryTimeout <= 0 {
		problems = append(problems, errors.New("DB_QUERY_TIMEOUT must be positive"))
	}
	if c.HealthInterval <= 0 {
		problems = append(problems, errors.New("HEALTH_INTERVAL must be positive"))
	}
	if c.MaxMessageLength <= 0 {
		problems = append(problems, errors.New("MAX_MESSAGE_LENGTH must be positive"))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		problems = append(problems, fmt.Errorf("unsupported GIN_MODE %q (want debug, release or test)", c.GinMode))
	}
	return errors.Join(problems...)
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	dsn := "-"
	if c.DatabaseURL != "" {
		dsn = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{DB: %s path=%s url=%s, HTTP: %s, gRPC: %s, log: %s}",
		c.DBDriver, c.DBPath, dsn, c.HTTPAddress, c.GRPCAddress, c.LogLevel)
}
