package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "CATALOG_PATH", "MAX_EXHAUSTIVE_ITEMS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, defaultMaxExhaustiveItems, cfg.MaxExhaustiveItems)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	assert.True(t, cfg.EnableRequestLogging)
	assert.Equal(t, defaultRateLimitRPS, cfg.RateLimitRPS)
	assert.Equal(t, defaultRateLimitBurst, cfg.RateLimitBurst)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_PATH", "/data/armor.db")
	t.Setenv("MAX_EXHAUSTIVE_ITEMS", "12")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/data/armor.db", cfg.CatalogPath)
	assert.Equal(t, 12, cfg.MaxExhaustiveItems)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	content := `port: "9100"
catalog_path: /data/armor.db
max_exhaustive_items: 16
shutdown_grace_period: 3s
read_header_timeout: 1s
enable_request_logging: true
rate_limit:
  rps: 10
  burst: 20
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "/data/armor.db", cfg.CatalogPath)
	assert.Equal(t, 16, cfg.MaxExhaustiveItems)
	assert.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	assert.Equal(t, time.Second, cfg.ReadHeaderTimeout)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoadMissingYAMLFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestCLIOverridesWinOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_EXHAUSTIVE_ITEMS", "12")

	port := "9500"
	maxItems := 8
	cfg, err := Load(&CLIOverrides{Port: &port, MaxExhaustiveItems: &maxItems})
	require.NoError(t, err)

	assert.Equal(t, "9500", cfg.Port)
	assert.Equal(t, 8, cfg.MaxExhaustiveItems)
}

func TestValidateConfig(t *testing.T) {
	clearEnv(t)

	t.Run("ExhaustiveLimitAboveHardBound", func(t *testing.T) {
		maxItems := 64
		_, err := Load(&CLIOverrides{MaxExhaustiveItems: &maxItems})
		assert.Error(t, err)
	})

	t.Run("ExhaustiveLimitAtHardBound", func(t *testing.T) {
		maxItems := 63
		cfg, err := Load(&CLIOverrides{MaxExhaustiveItems: &maxItems})
		require.NoError(t, err)
		assert.Equal(t, 63, cfg.MaxExhaustiveItems)
	})

	t.Run("InvalidEnvValuesIgnored", func(t *testing.T) {
		t.Setenv("MAX_EXHAUSTIVE_ITEMS", "not-a-number")
		t.Setenv("RATE_LIMIT_RPS", "-1")
		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, defaultMaxExhaustiveItems, cfg.MaxExhaustiveItems)
		assert.Equal(t, defaultRateLimitRPS, cfg.RateLimitRPS)
	})
}
