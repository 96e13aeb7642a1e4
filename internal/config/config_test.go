package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  env: dev\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "es", cfg.App.Locale)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.Dir)
}

func TestLoad_PostgresBackendNeedsDSN(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: postgres\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "postgres.dsn is empty")
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: redis\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  env: prod
  locale: en
http:
  addr: ":9000"
storage:
  backend: postgres
postgres:
  dsn: "postgres://localhost/stockwise"
telegram:
  token: "t"
  chat_id: 42
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, "postgres://localhost/stockwise", cfg.Postgres.DSN)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
	assert.True(t, cfg.Metrics.Enabled)
}
