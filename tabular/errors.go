// SPDX-License-Identifier: MIT
// Package: graphframe/tabular
//
// errors.go — sentinel errors for the tabular package.
//
// Error policy (strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping; sentinels are never
//     redefined with formatted strings.
//   - No function in this package panics at runtime.

package tabular

import (
	"errors"
	"fmt"
)

// ErrNilTable indicates an operation received a nil *Table.
// Usage: if errors.Is(err, ErrNilTable) { /* construct the table first */ }.
var ErrNilTable = errors.New("tabular: nil table")

// ErrLengthMismatch indicates a column (or attribute vector) whose length
// does not equal the table's row count, or ragged input to NewTable.
// Usage: if errors.Is(err, ErrLengthMismatch) { /* fix vector lengths */ }.
var ErrLengthMismatch = errors.New("tabular: column length mismatch")

// ErrDuplicateColumn indicates two columns sharing one name within a table.
var ErrDuplicateColumn = errors.New("tabular: duplicate column name")

// ErrColumnNotFound indicates a ByName selector naming an absent column.
var ErrColumnNotFound = errors.New("tabular: column not found")

// ErrColumnIndexOutOfRange indicates a ByIndex selector outside 1..NumCols.
var ErrColumnIndexOutOfRange = errors.New("tabular: column index out of range")

// ErrRowIndexOutOfRange indicates a row index outside 0..NumRows-1.
var ErrRowIndexOutOfRange = errors.New("tabular: row index out of range")

// ErrUnknownFilterOp indicates a Filter carrying an operator outside the
// closed FilterOp set.
var ErrUnknownFilterOp = errors.New("tabular: unknown filter operator")

// ErrUnsupportedAggregation indicates an aggregation name outside
// sum/min/max/mean/median.
// Usage: if errors.Is(err, ErrUnsupportedAggregation) { /* check agg name */ }.
var ErrUnsupportedAggregation = errors.New("tabular: unsupported aggregation")

// tabularErrorf prefixes err with the given method context, preserving the
// sentinel for errors.Is.
func tabularErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
