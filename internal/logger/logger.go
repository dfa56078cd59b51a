// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog.Logger for the secret-tunnel CLI.
//
// Diagnostics always go to a writer other than stdout (stderr in the CLI),
// since stdout carries the converted document.
package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding exposes the full zerolog API on *Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a *Logger that writes human-readable lines to w at the given
// level ("debug", "info", "warn", "error", ...).
func New(level string, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	logger := zerolog.New(out).Level(lvl).With().
		Str("role", "secret-tunnel").
		Logger()

	return &Logger{logger}, nil
}

// ParseLevel maps a level name to a zerolog.Level. An empty name is "warn".
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
