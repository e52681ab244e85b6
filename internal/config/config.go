package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	JWTSecret string

	Database DatabaseConfig

	// Optional integrations
	RedisURL     string
	KafkaBrokers []string
	EventsTopic  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the Postgres connection string for the configured database.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// MaintenanceDSN connects to the postgres maintenance database, used for
// the create-if-missing bootstrap step.
func (d DatabaseConfig) MaintenanceDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.SSLMode)
}

// LoadConfig reads configuration from the environment. A .env file is
// loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		JWTSecret:   getEnv("JWT_SECRET", "segredo-super-secreto"),
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Name:     getEnv("POSTGRES_DB", "blog"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		RedisURL:    getEnv("REDIS_URL", ""),
		EventsTopic: getEnv("EVENTS_TOPIC", "blog.events"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.Database.User == "" {
		return nil, fmt.Errorf("POSTGRES_USER is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
