// SPDX-License-Identifier: MIT
// Package: graphframe/tabular
//
// selector.go — ColumnSelector, the tagged union for addressing columns.
//
// Contract:
//   - A selector is either ByName(string) or ByIndex(int); there is no third
//     shape and the zero value resolves to an error, never to a column.
//   - Positional indexes are 1-based: ByIndex(1) is the leftmost column.
//   - Resolve is the single resolution point; every package API accepting a
//     selector delegates to it so error semantics stay uniform.

package tabular

import (
	"fmt"
	"strconv"
)

// selectorKind discriminates the two selector shapes.
type selectorKind uint8

const (
	selectorInvalid selectorKind = iota
	selectorByName
	selectorByIndex
)

// ColumnSelector addresses one column of a Table either by name or by
// 1-based position. Construct via ByName or ByIndex.
type ColumnSelector struct {
	kind  selectorKind
	name  string
	index int
}

// ByName selects the column with the given name.
func ByName(name string) ColumnSelector {
	return ColumnSelector{kind: selectorByName, name: name}
}

// ByIndex selects the column at the given 1-based position.
func ByIndex(i int) ColumnSelector {
	return ColumnSelector{kind: selectorByIndex, index: i}
}

// Resolve maps the selector to a 0-based column index within t.
// Errors: ErrColumnNotFound (absent name), ErrColumnIndexOutOfRange
// (position outside 1..NumCols, or an unconstructed selector).
// Complexity: O(C) for names, O(1) for indexes.
func (s ColumnSelector) Resolve(t *Table) (int, error) {
	if t == nil {
		return 0, ErrNilTable
	}

	switch s.kind {
	case selectorByName:
		for i, c := range t.cols {
			if c.Name == s.name {
				return i, nil
			}
		}

		return 0, fmt.Errorf("column %q: %w", s.name, ErrColumnNotFound)

	case selectorByIndex:
		if s.index < 1 || s.index > t.NumCols() {
			return 0, fmt.Errorf("index %d of %d columns: %w", s.index, t.NumCols(), ErrColumnIndexOutOfRange)
		}

		return s.index - 1, nil

	default:
		// Zero-value selector: report as an out-of-range position.
		return 0, fmt.Errorf("unconstructed selector: %w", ErrColumnIndexOutOfRange)
	}
}

// String renders the selector for error messages and logs.
func (s ColumnSelector) String() string {
	switch s.kind {
	case selectorByName:
		return strconv.Quote(s.name)
	case selectorByIndex:
		return "#" + strconv.Itoa(s.index)
	default:
		return "<invalid>"
	}
}
