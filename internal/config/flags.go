// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"fmt"
)

// parseFlags registers the CLI flags on fs and parses args.
// Unset flags stay at their zero value so lower layers show through.
func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	fs.BoolVar(&cfg.DoubleQuote, "double-quote", false, "quote output strings with \" instead of '")
	fs.StringVar(&cfg.LogLevel, "log-level", "", `diagnostic log level [debug, info, warn, error] (default "warn")`)
	fs.StringVar(&cfg.PostgresURL, "postgres-url", "", "only convert sensors enabled in this database")
	fs.DurationVar(&cfg.DBTimeout, "db-timeout", 0, "timeout for the enabled-sensor lookup (default 10s)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
