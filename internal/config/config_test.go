package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3*time.Minute, cfg.SpawnMinInterval)
	assert.Equal(t, 8*time.Minute, cfg.SpawnMaxInterval)
	assert.Equal(t, 30*time.Second, cfg.CatchWindow)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Equal(t, 50, cfg.FeedSize)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SPAWN_MIN_INTERVAL", "10s")
	t.Setenv("SPAWN_MAX_INTERVAL", "20s")
	t.Setenv("ALLOWED_ORIGINS", "https://party.example,http://localhost:5173")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.SpawnMinInterval)
	assert.Equal(t, []string{"https://party.example", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadConfigRejectsInvertedSpawnRange(t *testing.T) {
	t.Setenv("SPAWN_MIN_INTERVAL", "5m")
	t.Setenv("SPAWN_MAX_INTERVAL", "1m")

	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("CATCH_WINDOW", "soon")

	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}
