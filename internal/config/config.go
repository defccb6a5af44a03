// Package config loads the sales API configuration.
package config

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultAddr = ":8081"

// Config holds the application configuration, loadable from environment
// variables (SALES_ prefix), a .env file, flags, or YAML config files.
type Config struct {
	Addr     string `default:":8081" usage:"HTTP listen address"`
	LogLevel string `default:"info" usage:"Log level (debug, info, warn, error)" flag:"log-level"`
	GinMode  string `default:"release" usage:"Gin mode (debug, release, test)" flag:"gin-mode"`
	Graceful GracefulConfig
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ShutdownTimeout time.Duration `default:"10s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// Load reads .env (if present), then environment, flags and config files.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	return load(aconfig.Config{
		EnvPrefix: "SALES",
		Files:     []string{"config.yaml", "/etc/sales/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func load(ac aconfig.Config) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, ac)
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyPlatformDefaults honours a bare PORT variable when no address was set.
func (c *Config) applyPlatformDefaults() {
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = ":" + port
	}
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	lg, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return lg, nil
}
