package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:                 "development",
		Port:                "3000",
		JWTSecret:           "secure-secret-at-least-32-chars-long",
		SessionCookieName:   "statement1",
		SessionCookieSecure: true,
		DBDriver:            DriverSQLite,
		DatabaseURL:         "test.db",
		DBPassword:          "secure-password",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid sqlite development", func(_ *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Missing cookie name", func(c *Config) { c.SessionCookieName = "" }, true},
		{"Unknown driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"Sqlite without path", func(c *Config) { c.DatabaseURL = "" }, true},
		{"Postgres without host", func(c *Config) {
			c.DBDriver = DriverPostgres
			c.DBName = "inkwell"
		}, true},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = defaultJWTSecret
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "short"
		}, true},
		{"Production sqlite with strong secret", func(c *Config) { c.Env = "production" }, false},
		{"Production postgres without SSL", func(c *Config) {
			c.Env = "production"
			c.DBDriver = DriverPostgres
			c.DBHost = "db"
			c.DBName = "inkwell"
			c.DBSSLMode = "disable"
		}, true},
		{"Production postgres with SSL", func(c *Config) {
			c.Env = "production"
			c.DBDriver = DriverPostgres
			c.DBHost = "db"
			c.DBName = "inkwell"
			c.DBSSLMode = "require"
		}, false},
		{"Production postgres with default password", func(c *Config) {
			c.Env = "production"
			c.DBDriver = DriverPostgres
			c.DBHost = "db"
			c.DBName = "inkwell"
			c.DBSSLMode = "require"
			c.DBPassword = "password"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SessionTTL(t *testing.T) {
	c := &Config{}
	assert.Equal(t, 24*time.Hour, c.SessionTTL())

	c.SessionTTLHours = 2
	assert.Equal(t, 2*time.Hour, c.SessionTTL())
}

func TestLoadConfig_Normalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_DRIVER")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")
	os.Setenv("DB_DRIVER", "  SQLite ")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test", c.Env)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, "statement1", c.SessionCookieName)
	assert.True(t, c.SessionCookieSecure)
	assert.Equal(t, 24, c.SessionTTLHours)
}
