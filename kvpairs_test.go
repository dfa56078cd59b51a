// SPDX-License-Identifier: Apache-2.0

package secrettunnel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	secrettunnel "github.com/sam-fredrickson/secret-tunnel"
)

func TestEncodeKVPairs(t *testing.T) {
	tests := []struct {
		name     string
		in       map[string]any
		expected string
	}{
		{"empty", map[string]any{}, `{}`},
		{"nil", nil, `{}`},
		{"single", map[string]any{"Z": "3"}, `{"Z": "3"}`},
		{"sorted keys", map[string]any{"Y": "2", "X": "1"}, `{"X": "1", "Y": "2"}`},
		{"typed scalars", map[string]any{"n": uint64(8080), "neg": int64(-1), "f": 1.5, "b": true, "z": nil},
			`{"b": true, "f": 1.5, "n": 8080, "neg": -1, "z": null}`},
		{"escaping", map[string]any{"q": `say "hi"`, "nl": "a\nb"}, `{"nl": "a\nb", "q": "say \"hi\""}`},
		{"no html escaping", map[string]any{"url": "https://h/?a=1&b=<2>"}, `{"url": "https://h/?a=1&b=<2>"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secrettunnel.EncodeKVPairs(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncodeKVPairsUnencodable(t *testing.T) {
	_, err := secrettunnel.EncodeKVPairs(map[string]any{"inf": math.Inf(1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, secrettunnel.ErrEncode))

	var encErr *secrettunnel.EncodeError
	require.True(t, errors.As(err, &encErr))
	assert.Contains(t, encErr.What, "inf")
}

func TestDecodeKVPairs(t *testing.T) {
	m, err := secrettunnel.DecodeKVPairs(`{}`)
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)

	m, err = secrettunnel.DecodeKVPairs(`{"a": "1", "b": "3", "c": "4"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "b": "3", "c": "4"}, m)

	_, err = secrettunnel.DecodeKVPairs(`{"a": `)
	assert.Error(t, err)
}

func TestMergeBias(t *testing.T) {
	merged := secrettunnel.Merge(
		map[string]any{"a": "1", "b": "2"},
		map[string]any{"b": "3", "c": "4"},
	)
	encoded, err := secrettunnel.EncodeKVPairs(merged)
	require.NoError(t, err)

	decoded, err := secrettunnel.DecodeKVPairs(encoded)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "b": "3", "c": "4"}, decoded)
}
