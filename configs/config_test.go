package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_SOURCE", "JWT_SECRET", "JWT_TTL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "storefront.db", cfg.DBSource)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	for _, k := range []string{"PORT", "CURRENCY_SYMBOL", "JWT_TTL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nCURRENCY_SYMBOL=$\nJWT_TTL=2h\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
}

func TestLoadConfigBadTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestInitLoggerFallsBackToInfo(t *testing.T) {
	log, err := InitLogger("chatty")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(0))
}
