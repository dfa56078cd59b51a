// SPDX-License-Identifier: Apache-2.0

// Package secrettunnel converts Helm-style values files into a single
// aggregated secrets document.
//
// Each input contributes one record: its nameOverride, and a compact JSON
// object holding configmap.data merged with secret.data, where secret values
// win on key collision. Records keep the order in which paths were given.
package secrettunnel

import "reflect"

// Merge returns a new map holding every key of base, overwritten or extended
// by every key of overlay. On collision the overlay value wins.
//
// Neither argument is modified. A nil map behaves as an empty one, and the
// result is never nil.
//
// Example:
//
//	base := map[string]any{"a": "1", "b": "2"}
//	overlay := map[string]any{"b": "3", "c": "4"}
//	result := Merge(base, overlay)
//	// Result: map[a:1 b:3 c:4]
func Merge(base, overlay map[string]any) map[string]any {
	// Pre-allocate for base size since overlay keys may overlap
	result := make(map[string]any, len(base))

	// Copy base
	for k, v := range base {
		result[k] = v
	}

	// Overlay wins
	for k, v := range overlay {
		result[k] = v
	}

	return result
}

// isScalar reports whether a decoded value can be carried into kvpairs.
// Maps, slices and arrays are not scalar, whatever decoder produced them.
func isScalar(value any) bool {
	if value == nil {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return false
	default:
		return true
	}
}
