// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	secrettunnel "github.com/sam-fredrickson/secret-tunnel"
	"github.com/sam-fredrickson/secret-tunnel/internal/config"
	"github.com/sam-fredrickson/secret-tunnel/internal/logger"
	"github.com/sam-fredrickson/secret-tunnel/internal/store"
)

var version = "dev"

func main() {
	var failed bool
	defer func() {
		if failed {
			os.Exit(1)
		}
	}()

	program := os.Args[0]
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "usage: %s [flags] FILE...\n\n", program)
		fmt.Fprintf(out, "Converts values files into a single secrets document on stdout.\n")
		fmt.Fprintf(out, "Each file contributes its nameOverride and configmap.data merged with\n")
		fmt.Fprintf(out, "secret.data (secret wins), serialized as a compact JSON object.\n\n")
		fmt.Fprintf(out, "Example:\n")
		fmt.Fprintf(out, "  %s sensors/a.yaml sensors/b.yaml > secrets.yaml\n\n", program)
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	cfg, err := config.Load(fs, os.Args[1:], nil)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		_, _ = fmt.Fprintf(os.Stderr, "usage: %s [flags] FILE...\n", program)
		failed = true
		return
	}

	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		failed = true
		return
	}

	if err := Run(context.Background(), cfg, fs.Args(), os.Stdout, log); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "secret-tunnel:", err)
		failed = true
		return
	}
}

// Run converts files and writes the document to output.
// Nothing is written unless every file converts.
func Run(
	ctx context.Context,
	cfg *config.Config,
	files []string,
	output io.Writer,
	log *logger.Logger,
) error {
	opts := []secrettunnel.Option{secrettunnel.WithLogger(log.Logger)}
	if cfg.DoubleQuote {
		opts = append(opts, secrettunnel.WithDoubleQuote())
	}

	if cfg.PostgresURL != "" {
		sensors, err := loadEnabledSensors(ctx, cfg, log)
		if err != nil {
			return err
		}
		opts = append(opts, secrettunnel.WithSensorFilter(sensors))
	}

	converted, err := secrettunnel.NewConverter(opts...).Convert(files)
	if err != nil {
		return err
	}

	_, err = output.Write(converted)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func loadEnabledSensors(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.EnabledSensors, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	defer cancel()

	db, err := store.Connect(ctx, cfg.PostgresURL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled sensors: %w", err)
	}
	defer db.Close()

	sensors, err := store.NewSensorRepository(db, log).EnabledSensors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled sensors: %w", err)
	}
	return sensors, nil
}
