package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"TIMEZONE", "DB_DRIVER", "DB_PATH", "SERVER_PORT", "API_PREFIX", "CORS_ALLOW_ORIGINS", "LOG_FORMAT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", cfg.App.Timezone)
	require.NotNil(t, cfg.App.Location)
	assert.Equal(t, "Asia/Tokyo", cfg.App.Location.String())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/home_finance.db", cfg.Database.Path)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.App.SlogLevel())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "budget")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("API_PREFIX", "/v1/")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, time.UTC.String(), cfg.App.Location.String())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "/v1", cfg.Server.APIPrefix)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.App.SlogLevel())
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Contains(t, cfg.Database.DSN(), "dbname=budget")
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown timezone", "TIMEZONE", "Mars/Olympus"},
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"non numeric port", "SERVER_PORT", "http"},
		{"relative prefix", "API_PREFIX", "api"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "notanint")
	t.Setenv("CFG_TEST_BOOL", "false")
	t.Setenv("CFG_TEST_DURATION", "250ms")

	assert.Equal(t, 7, getIntEnv("CFG_TEST_INT", 7))
	assert.False(t, getBoolEnv("CFG_TEST_BOOL", true))
	assert.Equal(t, 250*time.Millisecond, getDurationEnv("CFG_TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", getEnv("CFG_TEST_MISSING", "fallback"))
}
