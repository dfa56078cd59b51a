// SPDX-License-Identifier: Apache-2.0

package secrettunnel

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// EncodeKVPairs serializes m as a JSON object on a single line, with ", "
// between members and ": " between a key and its value:
//
//	{"X": "1", "Y": "2"}
//
// Keys are written in ascending byte order. An empty or nil map encodes as
// "{}". Values keep their JSON type, so an unquoted YAML integer stays a
// number. Strings are not HTML-escaped.
func EncodeKVPairs(m map[string]any) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			b.WriteString(", ")
		}
		key, err := encodeJSON(k)
		if err != nil {
			return "", &EncodeError{What: "kvpairs key " + k, Err: err}
		}
		value, err := encodeJSON(m[k])
		if err != nil {
			return "", &EncodeError{What: "kvpairs value for " + k, Err: err}
		}
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)
	}
	b.WriteByte('}')
	return b.String(), nil
}

// DecodeKVPairs parses a kvpairs string back into a map.
func DecodeKVPairs(s string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode terminates every value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
