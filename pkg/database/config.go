package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds database connection settings.
type Config struct {
	// URL, when set, is used verbatim as the DSN and the discrete
	// fields below are ignored (except Database, derived from the path).
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the connection string for database/sql.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// LoadConfigFromEnv loads database configuration from the environment.
// DATABASE_URL wins over the discrete DB_* variables.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
	if maxOpen, err := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10")); err == nil {
		cfg.MaxOpenConns = maxOpen
	}
	if maxIdle, err := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5")); err == nil {
		cfg.MaxIdleConns = maxIdle
	}

	if rawURL := os.Getenv("DATABASE_URL"); rawURL != "" {
		cfg.URL = rawURL
		name, err := databaseNameFromURL(rawURL)
		if err != nil {
			return Config{}, err
		}
		cfg.Database = name
		return cfg, nil
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	cfg.Host = getEnvOrDefault("DB_HOST", "localhost")
	cfg.Port = port
	cfg.User = getEnvOrDefault("DB_USER", "genie")
	cfg.Password = os.Getenv("DB_PASSWORD")
	cfg.Database = getEnvOrDefault("DB_NAME", "genie")
	cfg.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
	return cfg, nil
}

// databaseNameFromURL extracts the database name from a postgres URL.
// golang-migrate needs it for its schema version table bookkeeping.
func databaseNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "", fmt.Errorf("DATABASE_URL has no database name: %s", rawURL)
	}
	return name, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
