package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is built once at startup and never mutated afterwards
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Environment   string
	Timezone      string
	Location      *time.Location
	LogLevel      string
	LogFormat     string
	SeedOnStartup bool
}

type ServerConfig struct {
	Port               string
	Host               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowOrigins   []string
	APIPrefix          string
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
}

// Load reads .env when present and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return FromEnv()
}

// FromEnv builds and validates a Config from environment variables only
func FromEnv() (*Config, error) {
	config := &Config{
		App: AppConfig{
			Environment:   getEnv("APP_ENV", "development"),
			Timezone:      getEnv("TIMEZONE", "Asia/Tokyo"),
			LogLevel:      strings.ToUpper(getEnv("LOG_LEVEL", "INFO")),
			LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
			SeedOnStartup: getBoolEnv("SEED_ON_STARTUP", true),
		},
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8000"),
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:    getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			APIPrefix:          getEnv("API_PREFIX", "/api"),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:            getEnv("DB_PATH", "data/home_finance.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "household"),
			Password:        getEnv("DB_PASSWORD", "household"),
			Name:            getEnv("DB_NAME", "household_budget"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded values and resolves the timezone
func (c *Config) Validate() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q", c.Server.Port)
	}

	if c.Server.APIPrefix != "" && !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with '/': %q", c.Server.APIPrefix)
	}
	c.Server.APIPrefix = strings.TrimSuffix(c.Server.APIPrefix, "/")

	switch c.App.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.App.LogFormat)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
