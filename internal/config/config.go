// SPDX-License-Identifier: Apache-2.0

// Package config loads secret-tunnel settings from defaults, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/sam-fredrickson/secret-tunnel/internal/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SECRET_TUNNEL_"

// Config holds every setting of the secret-tunnel CLI.
//
// Zero values mean "not set" so that layers merge cleanly; defaults are
// filled in by [Default].
type Config struct {
	// DoubleQuote quotes output strings with " instead of '.
	// Env: SECRET_TUNNEL_DOUBLE_QUOTE
	DoubleQuote bool `env:"DOUBLE_QUOTE"`

	// LogLevel is the zerolog level for diagnostics on stderr.
	// Env: SECRET_TUNNEL_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PostgresURL enables the enabled-sensor filter when non-empty.
	// Env: SECRET_TUNNEL_POSTGRES_URL
	PostgresURL string `env:"POSTGRES_URL"`

	// DBTimeout bounds the enabled-sensor lookup.
	// Env: SECRET_TUNNEL_DB_TIMEOUT
	DBTimeout time.Duration `env:"DB_TIMEOUT"`

	// ShowVersion is set by -version only.
	ShowVersion bool
}

// Default returns the lowest-precedence layer.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		DBTimeout: 10 * time.Second,
	}
}

// Load builds a Config from defaults, the given environment and args.
//
// Flags are registered on fs and parsed from args; the positional arguments
// remain available through fs.Args(). A nil environ reads the process
// environment.
func Load(fs *flag.FlagSet, args []string, environ map[string]string) (*Config, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withFlags(fs, args).
		build()
}

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 3),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Default())
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg, err := parseEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *flag.FlagSet, args []string) *configBuilder {
	flagCfg, err := parseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

func (c *Config) validate() error {
	var errs []error
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.DBTimeout <= 0 {
		errs = append(errs, fmt.Errorf("db timeout must be positive, got %s", c.DBTimeout))
	}
	return errors.Join(errs...)
}
