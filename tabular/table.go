// SPDX-License-Identifier: MIT
// Package: graphframe/tabular
//
// table.go — the ordered, column-major Table and its reshaping methods.
//
// Contract:
//   - A Table owns its cells: constructors and reshaping methods copy input
//     slices, so callers cannot alias internal state.
//   - Column order is significant and stable: it is the insertion order.
//   - All columns share exactly one length (the row count); every mutation
//     preserves this invariant or fails before touching state.
//   - Methods never panic; they return wrapped sentinel errors.
//
// Determinism:
//   - No maps are iterated when producing ordered output; column and row
//     order are always slice order.

package tabular

import "fmt"

// Method name constants for unified error wrapping (no magic strings).
const (
	opNewTable     = "NewTable"
	opColumn       = "Column"
	opAppendColumn = "AppendColumn"
	opSetColumn    = "SetColumn"
	opMapColumn    = "MapColumn"
	opRow          = "Row"
	opCell         = "Cell"
	opSelect       = "Select"
	opAppend       = "Append"
)

// Column is one named, ordered sequence of cells.
type Column struct {
	// Name identifies the column within its table (unique per table).
	Name string

	// Cells holds one Value per table row, in row order.
	Cells []Value
}

// clone returns a deep copy of the column (cells slice is copied; cell
// values themselves are immutable by convention).
func (c Column) clone() Column {
	cells := make([]Value, len(c.Cells))
	copy(cells, c.Cells)

	return Column{Name: c.Name, Cells: cells}
}

// Table is an ordered sequence of equally sized named columns.
// The zero value is not usable; construct via NewTable.
type Table struct {
	cols []Column
}

// NewTable builds a table from the given columns.
// All columns must share one length; names must be unique.
// Errors: ErrLengthMismatch (ragged input), ErrDuplicateColumn.
// Complexity: O(total cells) time and space (cells are copied).
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{cols: make([]Column, 0, len(cols))}
	seen := make(map[string]struct{}, len(cols))

	for i, c := range cols {
		// Enforce unique names within the batch.
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%s: column %q: %w", opNewTable, c.Name, ErrDuplicateColumn)
		}
		seen[c.Name] = struct{}{}

		// Enforce the single shared length against the first column.
		if i > 0 && len(c.Cells) != len(cols[0].Cells) {
			return nil, fmt.Errorf("%s: column %q has %d cells, want %d: %w",
				opNewTable, c.Name, len(c.Cells), len(cols[0].Cells), ErrLengthMismatch)
		}

		t.cols = append(t.cols, c.clone())
	}

	return t, nil
}

// MustNewTable is NewTable for statically known-good fixtures; it panics on
// error and is intended for tests and package-internal schema tables.
func MustNewTable(cols ...Column) *Table {
	t, err := NewTable(cols...)
	if err != nil {
		panic(err)
	}

	return t
}

// NumRows returns the row count (0 for a column-less table).
// Complexity: O(1).
func (t *Table) NumRows() int {
	if t == nil || len(t.cols) == 0 {
		return 0
	}

	return len(t.cols[0].Cells)
}

// NumCols returns the column count.
// Complexity: O(1).
func (t *Table) NumCols() int {
	if t == nil {
		return 0
	}

	return len(t.cols)
}

// ColumnNames returns the column names in table order.
// Complexity: O(C).
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}

	return names
}

// HasColumn reports whether a column with the given name exists.
// Complexity: O(C).
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c.Name == name {
			return true
		}
	}

	return false
}

// Column returns a deep copy of the column addressed by sel.
// Errors: ErrNilTable, ErrColumnNotFound, ErrColumnIndexOutOfRange.
// Complexity: O(R).
func (t *Table) Column(sel ColumnSelector) (Column, error) {
	if t == nil {
		return Column{}, tabularErrorf(opColumn, ErrNilTable)
	}
	idx, err := sel.Resolve(t)
	if err != nil {
		return Column{}, tabularErrorf(opColumn, err)
	}

	return t.cols[idx].clone(), nil
}

// AppendColumn adds a new column to the right edge of the table.
// On a column-less table any length is accepted and fixes the row count.
// Errors: ErrNilTable, ErrDuplicateColumn, ErrLengthMismatch.
// Complexity: O(R).
func (t *Table) AppendColumn(col Column) error {
	if t == nil {
		return tabularErrorf(opAppendColumn, ErrNilTable)
	}
	if t.HasColumn(col.Name) {
		return fmt.Errorf("%s: column %q: %w", opAppendColumn, col.Name, ErrDuplicateColumn)
	}
	if len(t.cols) > 0 && len(col.Cells) != t.NumRows() {
		return fmt.Errorf("%s: column %q has %d cells, want %d: %w",
			opAppendColumn, col.Name, len(col.Cells), t.NumRows(), ErrLengthMismatch)
	}

	t.cols = append(t.cols, col.clone())

	return nil
}

// SetColumn replaces the cells of an existing column, or appends the column
// when absent. The replacement length must match the row count.
// Errors: ErrNilTable, ErrLengthMismatch.
// Complexity: O(R).
func (t *Table) SetColumn(col Column) error {
	if t == nil {
		return tabularErrorf(opSetColumn, ErrNilTable)
	}
	if len(t.cols) > 0 && len(col.Cells) != t.NumRows() {
		return fmt.Errorf("%s: column %q has %d cells, want %d: %w",
			opSetColumn, col.Name, len(col.Cells), t.NumRows(), ErrLengthMismatch)
	}

	for i := range t.cols {
		if t.cols[i].Name == col.Name {
			t.cols[i] = col.clone()

			return nil
		}
	}
	t.cols = append(t.cols, col.clone())

	return nil
}

// MapColumn applies fn to every cell of the column addressed by sel,
// in place. fn must be pure; it receives each cell and returns its
// replacement.
// Errors: ErrNilTable, selector resolution sentinels.
// Complexity: O(R).
func (t *Table) MapColumn(sel ColumnSelector, fn func(Value) Value) error {
	if t == nil {
		return tabularErrorf(opMapColumn, ErrNilTable)
	}
	idx, err := sel.Resolve(t)
	if err != nil {
		return tabularErrorf(opMapColumn, err)
	}

	cells := t.cols[idx].Cells
	for i := range cells {
		cells[i] = fn(cells[i])
	}

	return nil
}

// Row returns a copy of row i as a slice of cells in column order.
// Errors: ErrNilTable, ErrRowIndexOutOfRange.
// Complexity: O(C).
func (t *Table) Row(i int) ([]Value, error) {
	if t == nil {
		return nil, tabularErrorf(opRow, ErrNilTable)
	}
	if i < 0 || i >= t.NumRows() {
		return nil, fmt.Errorf("%s: row %d of %d: %w", opRow, i, t.NumRows(), ErrRowIndexOutOfRange)
	}

	row := make([]Value, len(t.cols))
	for c := range t.cols {
		row[c] = t.cols[c].Cells[i]
	}

	return row, nil
}

// Cell returns the cell at (row, sel).
// Errors: ErrNilTable, ErrRowIndexOutOfRange, selector sentinels.
// Complexity: O(C) for name resolution, O(1) access.
func (t *Table) Cell(row int, sel ColumnSelector) (Value, error) {
	if t == nil {
		return nil, tabularErrorf(opCell, ErrNilTable)
	}
	idx, err := sel.Resolve(t)
	if err != nil {
		return nil, tabularErrorf(opCell, err)
	}
	if row < 0 || row >= t.NumRows() {
		return nil, fmt.Errorf("%s: row %d of %d: %w", opCell, row, t.NumRows(), ErrRowIndexOutOfRange)
	}

	return t.cols[idx].Cells[row], nil
}

// Select returns a new table holding the given rows, in the given order.
// Duplicated indices duplicate rows. Column set and order are preserved.
// Errors: ErrNilTable, ErrRowIndexOutOfRange.
// Complexity: O(len(rows) * C).
func (t *Table) Select(rows []int) (*Table, error) {
	if t == nil {
		return nil, tabularErrorf(opSelect, ErrNilTable)
	}

	out := &Table{cols: make([]Column, len(t.cols))}
	for c := range t.cols {
		out.cols[c] = Column{Name: t.cols[c].Name, Cells: make([]Value, 0, len(rows))}
	}
	for _, r := range rows {
		if r < 0 || r >= t.NumRows() {
			return nil, fmt.Errorf("%s: row %d of %d: %w", opSelect, r, t.NumRows(), ErrRowIndexOutOfRange)
		}
		for c := range t.cols {
			out.cols[c].Cells = append(out.cols[c].Cells, t.cols[c].Cells[r])
		}
	}

	return out, nil
}

// Append returns a new table with other's rows concatenated after t's rows.
// Columns are united by name: t's columns keep their order, columns unique
// to other are appended on the right; cells absent on either side are null.
// Neither input is mutated.
// Errors: ErrNilTable.
// Complexity: O((Rt+Ro) * (Ct+Co)).
func (t *Table) Append(other *Table) (*Table, error) {
	if t == nil || other == nil {
		return nil, tabularErrorf(opAppend, ErrNilTable)
	}

	rt, ro := t.NumRows(), other.NumRows()
	out := &Table{cols: make([]Column, 0, len(t.cols))}

	// Base columns first, padded with nulls where other lacks the column.
	for _, c := range t.cols {
		cells := make([]Value, 0, rt+ro)
		cells = append(cells, c.Cells...)
		if oc, ok := other.columnByName(c.Name); ok {
			cells = append(cells, oc.Cells...)
		} else {
			for i := 0; i < ro; i++ {
				cells = append(cells, nil)
			}
		}
		out.cols = append(out.cols, Column{Name: c.Name, Cells: cells})
	}

	// Columns unique to other, padded with nulls for base rows.
	for _, oc := range other.cols {
		if t.HasColumn(oc.Name) {
			continue
		}
		cells := make([]Value, rt, rt+ro)
		cells = append(cells, oc.Cells...)
		out.cols = append(out.cols, Column{Name: oc.Name, Cells: cells})
	}

	return out, nil
}

// Clone returns a deep copy of the table.
// Complexity: O(R * C).
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{cols: make([]Column, len(t.cols))}
	for i := range t.cols {
		out.cols[i] = t.cols[i].clone()
	}

	return out
}

// columnByName is the internal lookup shared by Append and selectors.
func (t *Table) columnByName(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}
