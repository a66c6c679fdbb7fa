package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	path := writeFile(t, dir, "credentials.yml", "openviking:\n  api_key: ov-secret\n")
	creds, err := LoadCredentials(ctx, path)
	require.Nil(t, err)
	assert.Equal(t, "ov-secret", creds.APIKey)

	_, err = LoadCredentials(ctx, filepath.Join(dir, "missing.yml"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "credentials not found")
	assert.Contains(t, err.Error(), "missing.yml")

	empty := writeFile(t, dir, "empty.yml", "openviking:\n  api_key: \"\"\n")
	_, err = LoadCredentials(ctx, empty)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "api_key is required")

	unwrapped := writeFile(t, dir, "unwrapped.yml", "api_key: ov-secret\n")
	_, err = LoadCredentials(ctx, unwrapped)
	assert.NotNil(t, err)
}

func TestLoadRuntime(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	path := writeFile(t, dir, "runtime.json", `{
  "openviking_url": "http://localhost:2933",
  "embedding_url": "http://localhost:2934",
  "openviking_port": 2933,
  "embedding_port": 2934
}`)
	record, err := LoadRuntime(ctx, path)
	require.Nil(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "http://localhost:2933", record.OpenVikingURL)
	assert.Equal(t, 2934, record.EmbeddingPort)

	record, err = LoadRuntime(ctx, filepath.Join(dir, "absent.json"))
	assert.Nil(t, err)
	assert.Nil(t, record)

	partial := writeFile(t, dir, "partial.json", `{"openviking_url": "http://localhost:2933"}`)
	_, err = LoadRuntime(ctx, partial)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "embedding_url is required")

	malformed := writeFile(t, dir, "broken.json", `{"openviking_url": `)
	_, err = LoadRuntime(ctx, malformed)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "failed to parse runtime file")
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
url: http://localhost:9933
credentials: /etc/viking/credentials.yml
project: atlas
tools:
  - viking_search
  - viking_read
dashboard:
  dir: ./static
  disabled: true
log:
  file: /tmp/viking-mcp.log
`)
	cfg, err := Load(ctx, path)
	require.Nil(t, err)
	assert.Equal(t, "http://localhost:9933", cfg.URL)
	assert.Equal(t, "/etc/viking/credentials.yml", cfg.Credentials)
	assert.Equal(t, "atlas", cfg.Project)
	assert.Equal(t, []string{"viking_search", "viking_read"}, cfg.Tools)
	require.NotNil(t, cfg.Dashboard)
	assert.True(t, cfg.Dashboard.Disabled)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, "/tmp/viking-mcp.log", cfg.Log.File)

	_, err = Load(ctx, filepath.Join(dir, "absent.yaml"))
	assert.NotNil(t, err)
}

func TestConfigInit(t *testing.T) {
	cfg := &Config{}
	cfg.Init()
	assert.Equal(t, "credentials.yml", cfg.Credentials)
	assert.Equal(t, []string{"*"}, cfg.Tools)
	require.NotNil(t, cfg.Dashboard)
	assert.Equal(t, ".", cfg.Dashboard.Dir)
	assert.Contains(t, cfg.Runtime, filepath.Join(".openviking", "runtime.json"))
	assert.Nil(t, cfg.Validate())

	cfg = &Config{Credentials: "custom.yml", Tools: []string{"viking_status"}}
	cfg.Init()
	assert.Equal(t, "custom.yml", cfg.Credentials)
	assert.Equal(t, []string{"viking_status"}, cfg.Tools)
}

func TestConfigInitProjectFromEnv(t *testing.T) {
	t.Setenv("KARVE_PROJECT", "atlas")
	cfg := &Config{}
	cfg.Init()
	assert.Equal(t, "atlas", cfg.Project)

	cfg = &Config{Project: "explicit"}
	cfg.Init()
	assert.Equal(t, "explicit", cfg.Project)
}
