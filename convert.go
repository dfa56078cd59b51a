// SPDX-License-Identifier: Apache-2.0

package secrettunnel

import (
	"bytes"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

// Record is one entry of the output document.
type Record struct {
	Name    string `yaml:"name"`
	KVPairs string `yaml:"kvpairs"`
}

// Output is the aggregated document written to stdout.
type Output struct {
	Secrets []Record `yaml:"secrets"`
}

// SensorFilter decides whether a values file is carried into the output,
// keyed by its configmap.data.STADIUM_DEVICE_SENSOR_UUID.
type SensorFilter interface {
	Enabled(uuid string) bool
}

// Option configures a [Converter].
type Option func(*Converter)

// WithDoubleQuote makes the output quote strings with double quotes.
// By default strings that need quoting are single-quoted.
func WithDoubleQuote() Option {
	return func(c *Converter) {
		c.singleQuote = false
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// WithSensorFilter drops every input whose sensor is not enabled in f.
// Without it every input yields exactly one record.
func WithSensorFilter(f SensorFilter) Option {
	return func(c *Converter) {
		c.filter = f
	}
}

// Converter turns a list of values files into an [Output].
//
// The zero value is not usable; create one with [NewConverter].
// A Converter holds no per-run state and can be reused.
type Converter struct {
	singleQuote bool
	log         zerolog.Logger
	filter      SensorFilter
}

// NewConverter creates a [Converter] with the given options.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		singleQuote: true,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts paths with default options. See [Converter.Convert].
func Convert(paths []string) ([]byte, error) {
	return NewConverter().Convert(paths)
}

// Convert reads every path in order and returns the serialized output
// document, terminated by a single newline.
//
// The first failing path aborts the conversion and nothing is returned,
// so callers never see a partial document.
func (c *Converter) Convert(paths []string) ([]byte, error) {
	out, err := c.Collect(paths)
	if err != nil {
		return nil, err
	}
	return c.Encode(out)
}

// Collect reads, validates and merges every path in order, without
// serializing the result.
func (c *Converter) Collect(paths []string) (*Output, error) {
	records := make([]Record, 0, len(paths))
	for _, path := range paths {
		log := c.log.With().Str("file", path).Logger()

		values, err := LoadValues(path)
		if err != nil {
			log.Debug().Err(err).Msg("cannot load values")
			return nil, err
		}

		if c.filter != nil {
			uuid := values.SensorUUID()
			if !c.filter.Enabled(uuid) {
				log.Debug().Str("sensor", uuid).Msg("sensor not enabled, skipping")
				continue
			}
		}

		kvpairs, err := EncodeKVPairs(values.KVPairs())
		if err != nil {
			log.Debug().Err(err).Msg("cannot encode kvpairs")
			return nil, err
		}

		records = append(records, Record{
			Name:    values.Name(),
			KVPairs: kvpairs,
		})
		log.Debug().Str("name", values.Name()).Msg("converted")
	}

	return &Output{Secrets: records}, nil
}

// Encode serializes out as YAML. Long values are never folded, and the
// result ends with exactly one newline.
func (c *Converter) Encode(out *Output) ([]byte, error) {
	if out.Secrets == nil {
		out = &Output{Secrets: []Record{}}
	}

	marshaled, err := yaml.MarshalWithOptions(out, yaml.UseSingleQuote(c.singleQuote))
	if err != nil {
		return nil, &EncodeError{What: "output document", Err: err}
	}

	marshaled = bytes.TrimRight(marshaled, "\n")
	return append(marshaled, '\n'), nil
}
