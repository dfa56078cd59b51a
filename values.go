// SPDX-License-Identifier: Apache-2.0

package secrettunnel

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// SensorUUIDKey is the configmap.data key that identifies the sensor a
// values file belongs to.
const SensorUUIDKey = "STADIUM_DEVICE_SENSOR_UUID"

// Format is the serialization format an input file is decoded as.
type Format string

const (
	// FormatYAML decodes YAML, which also covers JSON documents.
	FormatYAML Format = "yaml"
	// FormatTOML decodes TOML.
	FormatTOML Format = "toml"
)

// FormatFor picks the input format from the file extension.
// Files ending in .toml are TOML; everything else is treated as YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

func (f Format) String() string {
	return string(f)
}

// Unmarshal decodes data into out using the format's decoder.
func (f Format) Unmarshal(data []byte, out any) error {
	switch f {
	case FormatYAML:
		return yaml.Unmarshal(data, out)
	case FormatTOML:
		return toml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported format %q", string(f))
	}
}

// Values is the subset of a values file the converter reads.
// Every field is optional at decode time; [Values.Validate] enforces presence.
type Values struct {
	NameOverride *string      `yaml:"nameOverride" toml:"nameOverride"`
	ConfigMap    *DataSection `yaml:"configmap" toml:"configmap"`
	Secret       *DataSection `yaml:"secret" toml:"secret"`
}

// DataSection is the shape shared by the configmap and secret blocks.
type DataSection struct {
	Data map[string]any `yaml:"data" toml:"data"`
}

// LoadValues reads, decodes and validates the values file at path.
//
// The file is read in full and released before decoding. Errors are a
// [*ReadError], a [*ParseError] or a [*FieldError].
func LoadValues(path string) (*Values, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return DecodeValues(path, contents)
}

// DecodeValues decodes and validates contents as if read from path.
// The path selects the format and labels errors.
func DecodeValues(path string, contents []byte) (*Values, error) {
	format := FormatFor(path)

	var v Values
	if err := format.Unmarshal(contents, &v); err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	if err := v.Validate(path); err != nil {
		return nil, err
	}

	return &v, nil
}

// Validate checks that nameOverride, configmap.data and secret.data are
// present and that every data value is a scalar. path only labels errors.
func (v *Values) Validate(path string) error {
	if v.NameOverride == nil {
		return &FieldError{Path: path, Field: "nameOverride", Reason: "missing"}
	}
	if err := v.ConfigMap.validate(path, "configmap"); err != nil {
		return err
	}
	return v.Secret.validate(path, "secret")
}

func (s *DataSection) validate(path, section string) error {
	if s == nil {
		return &FieldError{Path: path, Field: section, Reason: "missing"}
	}
	if s.Data == nil {
		return &FieldError{Path: path, Field: section + ".data", Reason: "missing"}
	}
	for _, k := range slices.Sorted(maps.Keys(s.Data)) {
		if !isScalar(s.Data[k]) {
			return &FieldError{
				Path:   path,
				Field:  section + ".data." + k,
				Reason: fmt.Sprintf("value of type %T is not a scalar", s.Data[k]),
			}
		}
	}
	return nil
}

// Name returns nameOverride, or "" if it is absent.
func (v *Values) Name() string {
	if v.NameOverride == nil {
		return ""
	}
	return *v.NameOverride
}

// KVPairs returns configmap.data merged with secret.data, secret winning.
func (v *Values) KVPairs() map[string]any {
	var base, overlay map[string]any
	if v.ConfigMap != nil {
		base = v.ConfigMap.Data
	}
	if v.Secret != nil {
		overlay = v.Secret.Data
	}
	return Merge(base, overlay)
}

// SensorUUID returns configmap.data.STADIUM_DEVICE_SENSOR_UUID as a string,
// or "" if it is absent.
func (v *Values) SensorUUID() string {
	if v.ConfigMap == nil {
		return ""
	}
	raw, ok := v.ConfigMap.Data[SensorUUIDKey]
	if !ok || raw == nil {
		return ""
	}
	return fmt.Sprint(raw)
}
