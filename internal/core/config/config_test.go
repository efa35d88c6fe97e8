package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("SUPPLIER_TIMEOUT_SECONDS")
	os.Unsetenv("SUPPLIER_CONNECT_TIMEOUT_SECONDS")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("SUBMISSION_TTL_HOURS")
	os.Unsetenv("SUBMISSION_LOG_MAX")

	os.Setenv("SUPPLIER_URL", "https://supplier.test")
	defer os.Unsetenv("SUPPLIER_URL")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "https://supplier.test", cfg.Supplier.URL)
	assert.Empty(t, cfg.Supplier.Email)
	assert.Equal(t, 30, cfg.Supplier.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Supplier.ConnectTimeoutSeconds)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, 24, cfg.Submissions.TTLHours)
	assert.Equal(t, 100, cfg.Submissions.MaxEntries)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("SUPPLIER_URL", "https://orders.supplier.test")
	os.Setenv("SUPPLIER_EMAIL", "ops@merchant.test")
	os.Setenv("SUPPLIER_TOKEN", "tok_123")
	os.Setenv("SUPPLIER_TIMEOUT_SECONDS", "45")
	os.Setenv("SUPPLIER_CONNECT_TIMEOUT_SECONDS", "5")
	os.Setenv("REDIS_URL", "redis://cache.test:6380")
	os.Setenv("SUBMISSION_TTL_HOURS", "48")
	os.Setenv("SUBMISSION_LOG_MAX", "250")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SUPPLIER_URL")
		os.Unsetenv("SUPPLIER_EMAIL")
		os.Unsetenv("SUPPLIER_TOKEN")
		os.Unsetenv("SUPPLIER_TIMEOUT_SECONDS")
		os.Unsetenv("SUPPLIER_CONNECT_TIMEOUT_SECONDS")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("SUBMISSION_TTL_HOURS")
		os.Unsetenv("SUBMISSION_LOG_MAX")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://orders.supplier.test", cfg.Supplier.URL)
	assert.Equal(t, "ops@merchant.test", cfg.Supplier.Email)
	assert.Equal(t, "tok_123", cfg.Supplier.Token)
	assert.Equal(t, 45, cfg.Supplier.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Supplier.ConnectTimeoutSeconds)
	assert.Equal(t, "redis://cache.test:6380", cfg.Redis.URL)
	assert.Equal(t, 48, cfg.Submissions.TTLHours)
	assert.Equal(t, 250, cfg.Submissions.MaxEntries)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
SUPPLIER_URL=https://staging.supplier.test
SUPPLIER_EMAIL=staging@merchant.test
SUPPLIER_TOKEN=tok_staging
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.supplier.test", cfg.Supplier.URL)
	assert.Equal(t, "staging@merchant.test", cfg.Supplier.Email)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("SUPPLIER_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: SUPPLIER_URL")
}
