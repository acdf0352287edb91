package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Вспомогательные хелперы.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// Полный корректный YAML с заданными значениями (не зависящими от дефолтов).
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "9000"
auth:
  jwt_secret: "super-secret"
  access_token_ttl: "10m"
  refresh_token_ttl: "168h"
  issuer: "issuerX"
db:
  db_url: "mongodb://localhost:27017/songs"
cors:
  allowed_origins: ["http://localhost:3000"]
export:
  dir: "out"
timeouts:
  service: "3s"
`

// Минимально валидный YAML (только обязательные поля).
const minimalYAML = `
auth:
  jwt_secret: "min-secret"
db:
  db_url: "mongodb://localhost/min"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
auth:
  jwt_secret: [unclosed
`

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, "9000", cfg.HTTP.Port)
	require.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr())

	require.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 10*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.Equal(t, "issuerX", cfg.Auth.Issuer)

	require.Equal(t, "mongodb://localhost:27017/songs", cfg.DB.URL)
	require.ElementsMatch(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "out", cfg.Export.Dir)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
}

func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

func TestLoad_MinimalYAML_AppliesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, "8000", cfg.HTTP.Port)
	require.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.Equal(t, "songs-service", cfg.Auth.Issuer)
	require.Equal(t, "assets", cfg.Export.Dir)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Service)
}

func TestLoad_BrokenYAML_Fails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
}

func TestLoad_EnvOverlaysFileValues(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", minimalYAML)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "1m")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	require.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
