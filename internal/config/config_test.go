package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "database:\n  dbname: racing\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://www.jra.go.jp", cfg.Source.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 3, cfg.Source.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Source.Retry.Delay)
	assert.Equal(t, 4, cfg.Sync.Concurrency)
	assert.Equal(t, 1, cfg.Sync.Workers)
	assert.Equal(t, "0 0 18 * * *", cfg.Sync.Schedule)
	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_ExpandsEnvAndOverrides(t *testing.T) {
	t.Setenv("RACING_DB_PASSWORD", "s3cret")
	path := writeConfig(t, `
database:
  host: db
  port: 5433
  user: racing
  password: ${RACING_DB_PASSWORD}
  dbname: racing
source:
  base_url: http://upstream.local
  timeout: 2s
  retry:
    max_attempts: 5
    delay: 250ms
sync:
  concurrency: 2
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "host=db port=5433 user=racing password=s3cret dbname=racing sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "http://upstream.local", cfg.Source.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 5, cfg.Source.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Source.Retry.Delay)
	assert.Equal(t, 2, cfg.Sync.Concurrency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "source: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
