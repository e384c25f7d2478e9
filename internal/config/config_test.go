package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvSchemaVersion, EnvEnvironment, EnvLogLevel, EnvLogFormat, EnvServiceName, EnvVersion,
		EnvHTTPPort, EnvNodesPath, EnvTickInterval, EnvWorkerCount, EnvQueueSize,
		EnvLevelBaseXP, EnvLevelGrowth, EnvMaxLevel, EnvResourceMultiplier, EnvExperienceMultiplier,
		EnvAPIKey, EnvTrustedProxies, EnvRateLimit, EnvRateWindow,
	} {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		}
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.HTTPPort, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 1, cfg.WorkerCount)
		assert.Equal(t, 100.0, cfg.LevelBaseXP)
		assert.Equal(t, 1.1, cfg.LevelGrowth)
		assert.Equal(t, 99, cfg.MaxLevel)
		assert.Equal(t, 1.0, cfg.ResourceMultiplier)
		assert.Empty(t, cfg.NodesPath)
		assert.True(t, cfg.IsDevelopment())
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvHTTPPort, "3000")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvNodesPath, "configs/nodes.yaml")
		t.Setenv(EnvTickInterval, "250ms")
		t.Setenv(EnvMaxLevel, "0")
		t.Setenv(EnvResourceMultiplier, "0.4")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.HTTPPort)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "configs/nodes.yaml", cfg.NodesPath)
		assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 0, cfg.MaxLevel)
		assert.Equal(t, 0.4, cfg.ResourceMultiplier)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("loads inspection server security settings", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "k3y")
		t.Setenv(EnvTrustedProxies, " 10.0.0.1, ,10.0.0.2 ")
		t.Setenv(EnvRateLimit, "50")
		t.Setenv(EnvRateWindow, "1m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "k3y", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 50, cfg.RateLimit)
		assert.Equal(t, time.Minute, cfg.RateWindow)
	})

	t.Run("rejects a non-numeric port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvHTTPPort, "eighty")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid HTTP_PORT value")
	})

	t.Run("rejects values outside their constraints", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLevelGrowth, "0.5")
		t.Setenv(EnvLogFormat, "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LevelGrowth")
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("rejects a mismatched env schema", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, "0.9")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("int falls back on parse failure", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("float parses", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "1.25")
		assert.Equal(t, 1.25, getEnvAsFloat("TEST_FLOAT_VAR", 1))
	})

	t.Run("duration falls back when unset", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Second))
	})

	t.Run("duration parses go syntax", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1m30s")
		assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Second))
	})
}

func TestWarnings(t *testing.T) {
	cfg := &Config{
		Environment:          "test",
		ResourceMultiplier:   25,
		ExperienceMultiplier: 1,
		LevelGrowth:          1,
		WorkerCount:          4,
	}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "RESOURCE_MULTIPLIER=25")
	assert.Contains(t, warnings[1], "LEVEL_GROWTH=1")
	assert.Contains(t, warnings[2], "WORKER_COUNT=4")
}

func TestWarnings_UnauthenticatedProduction(t *testing.T) {
	cfg := &Config{Environment: "prod", ResourceMultiplier: 1, LevelGrowth: 1.1, WorkerCount: 1}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvAPIKey)
}
