// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the SECRET_TUNNEL_* variables into a fresh Config.
// When environ is nil the process environment is used.
func parseEnv(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
