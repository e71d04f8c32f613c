package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirigent.yaml"), []byte(content), 0o644))
}

func TestInitialize_Defaults(t *testing.T) {
	// An empty config dir means built-in defaults across the board.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Empty(t, cfg.Server.AllowedWSOrigins)

	assert.Equal(t, 30*time.Minute, cfg.Janitor.StaleJobThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Janitor.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Janitor.SweepIntervalJitter)
	assert.Equal(t, 1*time.Hour, cfg.Janitor.EventTTL)
	assert.Equal(t, 12*time.Hour, cfg.Janitor.CleanupInterval)
}

func TestInitialize_FileOverridesMergeOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  port: 9090
  allowed_ws_origins:
    - dashboard.example.com
janitor:
  stale_job_threshold: 10m
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"dashboard.example.com"}, cfg.Server.AllowedWSOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Janitor.StaleJobThreshold)

	// Unset fields keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5*time.Minute, cfg.Janitor.SweepInterval)
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitialize_EnvTemplateExpansion(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  host: "{{.DIRIGENT_HOST}}"
`)
	t.Setenv("DIRIGENT_HOST", "127.0.0.1")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  port: [not\n a port\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "dirigent.yaml", loadErr.File)
}

func TestInitialize_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "port out of range",
			yaml: "server:\n  port: 70000\n",
		},
		{
			name: "negative stale job threshold",
			yaml: "janitor:\n  stale_job_threshold: -5m\n",
		},
		{
			name: "zero sweep interval rejected once set",
			yaml: "janitor:\n  sweep_interval: -1s\n",
		},
		{
			name: "negative event ttl",
			yaml: "janitor:\n  event_ttl: -1h\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.yaml)

			_, err := Initialize(context.Background(), dir)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
