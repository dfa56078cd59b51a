// SPDX-License-Identifier: Apache-2.0

package secrettunnel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	secrettunnel "github.com/sam-fredrickson/secret-tunnel"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		overlay  map[string]any
		expected map[string]any
	}{
		{
			name:     "overlay wins on collision",
			base:     map[string]any{"a": "1", "b": "2"},
			overlay:  map[string]any{"b": "3", "c": "4"},
			expected: map[string]any{"a": "1", "b": "3", "c": "4"},
		},
		{
			name:     "both empty",
			base:     map[string]any{},
			overlay:  map[string]any{},
			expected: map[string]any{},
		},
		{
			name:     "nil behaves as empty",
			base:     nil,
			overlay:  nil,
			expected: map[string]any{},
		},
		{
			name:     "empty base",
			base:     map[string]any{},
			overlay:  map[string]any{"Z": "3"},
			expected: map[string]any{"Z": "3"},
		},
		{
			name:     "empty overlay",
			base:     map[string]any{"X": "1"},
			overlay:  nil,
			expected: map[string]any{"X": "1"},
		},
		{
			name:     "overlay null replaces base",
			base:     map[string]any{"k": "v"},
			overlay:  map[string]any{"k": nil},
			expected: map[string]any{"k": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := secrettunnel.Merge(tt.base, tt.overlay)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMergeDoesNotMutate(t *testing.T) {
	base := map[string]any{"a": "1", "b": "2"}
	overlay := map[string]any{"b": "3"}

	result := secrettunnel.Merge(base, overlay)
	result["new"] = "x"

	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, base)
	assert.Equal(t, map[string]any{"b": "3"}, overlay)
}
