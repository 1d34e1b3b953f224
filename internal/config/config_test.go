package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
server:
  host: "127.0.0.1"
  port: 8080
  public_url: "https://party.example.com"
  max_connections: 64

redis:
  addr: "redis:6379"
  password: "secret"
  db: 1

game:
  admin_password: "hunter2"
  max_players: 8
  min_players: 3
  max_imposters: 4
  shutdown_timeout: 60

security:
  allowed_origins:
    - "http://localhost:3000"
  rate_limit:
    max_per_second: 10
    max_per_minute: 120
    ban_duration: 120
  message_limit:
    max_per_second: 50
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://party.example.com", cfg.Server.PublicURL)
	assert.Equal(t, 64, cfg.Server.MaxConnections)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "hunter2", cfg.Game.AdminPassword)
	assert.Equal(t, 8, cfg.Game.MaxPlayers)
	assert.Equal(t, 3, cfg.Game.MinPlayers)
	assert.Equal(t, 4, cfg.Game.MaxImposters)
	assert.Equal(t, 60*time.Second, cfg.Game.ShutdownTimeoutDuration())
	assert.Equal(t, 120*time.Second, cfg.Security.RateLimit.BanDurationTime())
	assert.Equal(t, 50, cfg.Security.MessageLimit.MaxPerSecond)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	content := `
server:
  port: 9000
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	// 未出现的字段保持默认值
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 6, cfg.Game.MaxPlayers)
	assert.Equal(t, 2, cfg.Game.MinPlayers)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("server: [not a map"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Game.MaxPlayers)
	assert.Equal(t, 5, cfg.Game.MaxImposters)
	assert.Empty(t, cfg.Redis.Addr)
}
