package config

import (
	"testing"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testLoaderConfig() aconfig.Config {
	return aconfig.Config{
		EnvPrefix: "SALES",
		SkipFlags: true,
		SkipFiles: true,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := load(testLoaderConfig())
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 10*time.Second, cfg.Graceful.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SALES_ADDR", "127.0.0.1:9000")
	t.Setenv("SALES_LOG_LEVEL", "debug")
	t.Setenv("SALES_GRACEFUL_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := load(testLoaderConfig())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.Graceful.ShutdownTimeout)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := load(testLoaderConfig())
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("SALES_LOG_LEVEL", "loud")

	_, err := load(testLoaderConfig())
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	lg, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lg.Core().Enabled(zapcore.WarnLevel))
}
