package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_YAMLAndDefaults(t *testing.T) {
	dir := writeConfig(t, `
backend:
  baseUrl: http://api.example.test
  requestTimeout: 3s
`)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, "http://api.example.test", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 7200, cfg.Deals.MinSeconds)
	assert.Equal(t, 43200, cfg.Deals.MaxSeconds)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, `
backend:
  baseUrl: http://from-yaml.test
`)
	t.Chdir(dir)
	t.Setenv("BACKEND_BASEURL", "http://from-env.test")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "http://from-env.test", cfg.Backend.BaseURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
