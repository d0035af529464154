package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"pizzeria/internal/jobs"
)

// Store drivers selectable with STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	StoreDriver       string
	ReconcileSchedule string
	LogLevel          string
}

// LoadConfig reads the configuration through lookup (os.LookupEnv in main), falling
// back to defaults for unset keys.
func LoadConfig(lookup func(key string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	maxOpen, openErr := strconv.Atoi(get("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, idleErr := strconv.Atoi(get("DB_MAX_IDLE_CONNS", "5"))
	if err := errors.Join(openErr, idleErr); err != nil {
		return Config{}, fmt.Errorf("invalid connection pool size: %w", err)
	}

	config := Config{
		HTTPPort:          get("HTTP_PORT", "8080"),
		DBHost:            get("DB_HOST", "localhost"),
		DBPort:            get("DB_PORT", "5432"),
		DBUser:            get("DB_USER", "postgres"),
		DBPassword:        get("DB_PASSWORD", ""),
		DBName:            get("DB_NAME", "pizzeria"),
		DBSslMode:         get("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    maxOpen,
		DBMaxIdleConns:    maxIdle,
		StoreDriver:       strings.ToLower(get("STORE_DRIVER", StoreDriverPostgres)),
		ReconcileSchedule: get("RECONCILE_SCHEDULE", jobs.DefaultReconcileSchedule),
		LogLevel:          get("LOG_LEVEL", "info"),
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var problems []error
	if c.StoreDriver != StoreDriverPostgres && c.StoreDriver != StoreDriverMemory {
		problems = append(problems, fmt.Errorf("unknown store driver %q", c.StoreDriver))
	}
	if c.DBMaxOpenConns < 1 {
		problems = append(problems, errors.New("DB_MAX_OPEN_CONNS must be positive"))
	}
	if c.DBMaxIdleConns < 0 || c.DBMaxIdleConns > c.DBMaxOpenConns {
		problems = append(problems, errors.New("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS"))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
