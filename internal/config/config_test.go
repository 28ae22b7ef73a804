package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultUpstreamBaseURL, cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, 200, cfg.Cache.Capacity)
	assert.Equal(t, 20*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.RedisEnabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Europe/Oslo", cfg.Planner.TimeZone)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Empty(t, cfg.Warmup.StopIDs)
	assert.Equal(t, 15*time.Second, cfg.Warmup.Interval)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_HOST=127.0.0.1\n" +
		"API_PORT=9090\n" +
		"UPSTREAM_BASE_URL=http://upstream.test/\n" +
		"CACHE_CAPACITY=50\n" +
		"CACHE_TTL=1500\n" +
		"CACHE_REDIS_ENABLED=true\n" +
		"LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, "http://upstream.test", cfg.Upstream.BaseURL)
	assert.Equal(t, 50, cfg.Cache.Capacity)
	assert.Equal(t, 1500*time.Millisecond, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.RedisEnabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CACHE_CAPACITY", "7")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Cache.Capacity)
}

func TestPlannerLocation(t *testing.T) {
	cfg := &Config{Planner: PlannerConfig{TimeZone: "UTC"}}

	loc, err := cfg.PlannerLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Planner.TimeZone = "Not/AZone"
	_, err = cfg.PlannerLocation()
	assert.Error(t, err)
}

func TestLoadFile_WarmupStopIDs(t *testing.T) {
	t.Setenv("WARMUP_STOP_IDS", "3010011, 3010013,")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, []int{3010011, 3010013}, cfg.Warmup.StopIDs)

	t.Setenv("WARMUP_STOP_IDS", "jernbanetorget")
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
