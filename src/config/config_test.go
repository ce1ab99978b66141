package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cleartrack/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "appsettings.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeSettings(t, `
service:
  port: "8000"
  allowedOrigins:
    - "http://localhost:3000"
databases:
  sql:
    host: "localhost"
    port: "5432"
    username: "postgres"
    password: "postgres"
    database: "cleartrack"
externalClients:
  marketData:
    baseUrl: "https://example.test"
scheduler:
  snapshotCron: "0 16 * * *"
`)

	t.Run("reads the yaml settings", func(t *testing.T) {
		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.Service.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Service.AllowedOrigins)
		assert.Equal(t, "cleartrack", cfg.Databases.SQL.Database)
		assert.Equal(t, "https://example.test", cfg.ExternalClients.MarketData.BaseURL)
		assert.Equal(t, "0 16 * * *", cfg.Scheduler.SnapshotCron)
	})

	t.Run("DATABASE_URL overrides the connection string", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/cleartrack")

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "postgres://user:pass@db:5432/cleartrack", cfg.Databases.SQL.ConnectionString)
	})
}
