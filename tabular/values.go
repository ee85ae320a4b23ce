// SPDX-License-Identifier: MIT
// Package: graphframe/tabular
//
// values.go — the loose cell value model and its coercion helpers.
//
// Contract:
//   - A cell is nil (null) or one of: string, bool, int64, float64.
//   - Filters and aggregations consume cells exclusively through the helpers
//     below; direct type switches elsewhere are a defect.
//   - Coercions are lossless: AsFloat never parses strings, AsString never
//     stringifies numbers.

package tabular

// Value is a single table cell. By convention it holds nil, string, bool,
// int64 or float64; other dynamic types are tolerated but opaque to the
// filter and aggregation engines.
type Value = any

// IsNull reports whether v is the null cell.
func IsNull(v Value) bool { return v == nil }

// AsFloat returns v as a float64 when v is numeric (int64, float64, or the
// untyped-int convenience case). Strings and booleans are not numeric.
func AsFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		// Convenience for literal ints supplied by callers.
		return float64(x), true
	default:
		return 0, false
	}
}

// AsString returns v as a string when v holds one.
func AsString(v Value) (string, bool) {
	s, ok := v.(string)

	return s, ok
}

// AsBool returns v as a bool when v holds one.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(bool)

	return b, ok
}
