// SPDX-License-Identifier: MIT
// Package: graphframe/tabular
//
// filter.go — the closed row-filter expression and its matcher.
//
// Contract:
//   - A Filter is (column selector, operator, literal). The operator set is
//     closed: Eq, Ne, Lt, Le, Gt, Ge. No expression language, no parsing.
//   - ApplyFilters intersects the row sets of all filters: a row survives
//     only when every filter matches it (logical AND).
//   - Null cells never match any filter, including Ne.
//   - Comparison policy: numeric when both cell and literal are numeric,
//     lexical when both are strings, boolean equality for bool pairs;
//     otherwise the ordering operators never match and Eq/Ne compare
//     dynamic equality.
//
// Determinism:
//   - Returned row indexes are ascending; no map iteration.

package tabular

import (
	"fmt"
	"strings"
)

// FilterOp is one comparison operator of the closed filter set.
type FilterOp uint8

const (
	// FilterEq matches cells equal to the literal.
	FilterEq FilterOp = iota + 1
	// FilterNe matches non-null cells different from the literal.
	FilterNe
	// FilterLt matches cells strictly below the literal.
	FilterLt
	// FilterLe matches cells at or below the literal.
	FilterLe
	// FilterGt matches cells strictly above the literal.
	FilterGt
	// FilterGe matches cells at or above the literal.
	FilterGe
)

// String renders the operator for error messages.
func (op FilterOp) String() string {
	switch op {
	case FilterEq:
		return "=="
	case FilterNe:
		return "!="
	case FilterLt:
		return "<"
	case FilterLe:
		return "<="
	case FilterGt:
		return ">"
	case FilterGe:
		return ">="
	default:
		return "?"
	}
}

// Filter is one declarative row predicate over a single column.
type Filter struct {
	// Col addresses the column the predicate reads.
	Col ColumnSelector

	// Op is the comparison operator.
	Op FilterOp

	// Lit is the right-hand literal the cell is compared against.
	Lit Value
}

const opApplyFilters = "ApplyFilters"

// ApplyFilters returns the ascending indexes of rows matching ALL filters.
// With no filters every row matches.
// Errors: ErrNilTable, selector sentinels, ErrUnknownFilterOp.
// Complexity: O(R * len(filters)).
func ApplyFilters(t *Table, filters ...Filter) ([]int, error) {
	if t == nil {
		return nil, tabularErrorf(opApplyFilters, ErrNilTable)
	}

	// Resolve all selectors up front so no filter runs against a missing column.
	cols := make([]int, len(filters))
	for i, f := range filters {
		if f.Op < FilterEq || f.Op > FilterGe {
			return nil, fmt.Errorf("%s: filter %d (%s): %w", opApplyFilters, i, f.Op, ErrUnknownFilterOp)
		}
		idx, err := f.Col.Resolve(t)
		if err != nil {
			return nil, tabularErrorf(opApplyFilters, err)
		}
		cols[i] = idx
	}

	rows := make([]int, 0, t.NumRows())
	for r := 0; r < t.NumRows(); r++ {
		keep := true
		for i, f := range filters {
			if !matches(t.cols[cols[i]].Cells[r], f.Op, f.Lit) {
				keep = false

				break
			}
		}
		if keep {
			rows = append(rows, r)
		}
	}

	return rows, nil
}

// matches evaluates one cell against (op, lit) per the comparison policy.
func matches(cell Value, op FilterOp, lit Value) bool {
	// Null never matches, by contract.
	if IsNull(cell) {
		return false
	}

	// Numeric pair: compare as float64.
	if cf, ok := AsFloat(cell); ok {
		if lf, lok := AsFloat(lit); lok {
			return compareOrdered(cmpFloat(cf, lf), op)
		}
	}

	// String pair: lexical comparison.
	if cs, ok := AsString(cell); ok {
		if ls, lok := AsString(lit); lok {
			return compareOrdered(strings.Compare(cs, ls), op)
		}
	}

	// Boolean pair: equality only.
	if cb, ok := AsBool(cell); ok {
		if lb, lok := AsBool(lit); lok {
			switch op {
			case FilterEq:
				return cb == lb
			case FilterNe:
				return cb != lb
			default:
				return false
			}
		}
	}

	// Mixed or opaque types: dynamic equality for Eq/Ne, no ordering.
	switch op {
	case FilterEq:
		return cell == lit
	case FilterNe:
		return cell != lit
	default:
		return false
	}
}

// cmpFloat returns -1/0/+1 for a<b, a==b, a>b. NaN compares unequal and
// unordered, so it yields no match for every operator.
func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	default:
		// NaN involved: report an impossible ordering token.
		return 2
	}
}

// compareOrdered maps a three-way comparison onto the operator set.
func compareOrdered(c int, op FilterOp) bool {
	switch op {
	case FilterEq:
		return c == 0
	case FilterNe:
		return c == -1 || c == 1
	case FilterLt:
		return c == -1
	case FilterLe:
		return c == -1 || c == 0
	case FilterGt:
		return c == 1
	case FilterGe:
		return c == 1 || c == 0
	default:
		return false
	}
}
