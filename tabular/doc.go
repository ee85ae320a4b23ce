// SPDX-License-Identifier: MIT
//
// Package tabular implements the ordered table model that backs graph
// containers: a Table is an ordered sequence of named columns of equal
// length, holding loosely typed cells.
//
// The package provides four concerns:
//
//   - Table construction and reshaping: NewTable, AppendColumn, Append
//     (row-wise concatenation with column union), Select, Clone, MapColumn.
//   - Column addressing: ColumnSelector is a tagged union (ByName / ByIndex)
//     resolved against a concrete table; positional indexes are 1-based.
//   - Row filtering: Filter is a closed (column, operator, literal)
//     expression; ApplyFilters intersects the row sets of all filters
//     (logical AND). There is deliberately no expression language here.
//   - Aggregation: Aggregate computes sum/min/max/mean/median over a column,
//     excluding null and non-numeric cells; an empty subset yields NaN,
//     never an error.
//
// Cell values are restricted by convention to nil, string, bool, int64 and
// float64. Helpers IsNull, AsFloat and AsString perform the loose coercions
// the filter and aggregation engines rely on.
//
// Error policy follows the repository convention: package-level sentinel
// errors only, branched with errors.Is, wrapped with method context via %w.
// No function in this package panics at runtime.
package tabular
