// SPDX-License-Identifier: MIT
// Package tabular_test verifies the Table construction, addressing and
// reshaping contracts: shared column length, unique names, 1-based
// positional selectors, column-union Append, and deep-copy semantics.

package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphframe/graphframe/tabular"
)

// newSampleTable builds the shared three-column fixture:
//
//	id | label | weight
//	 1 | "a"   | 1.5
//	 2 | "b"   | nil
//	 3 | "c"   | 3.0
func newSampleTable(t *testing.T) *tabular.Table {
	t.Helper()
	tbl, err := tabular.NewTable(
		tabular.Column{Name: "id", Cells: []tabular.Value{int64(1), int64(2), int64(3)}},
		tabular.Column{Name: "label", Cells: []tabular.Value{"a", "b", "c"}},
		tabular.Column{Name: "weight", Cells: []tabular.Value{1.5, nil, 3.0}},
	)
	require.NoError(t, err)

	return tbl
}

func TestNewTable_Validation(t *testing.T) {
	t.Parallel()

	// Ragged input must fail before any state is built.
	_, err := tabular.NewTable(
		tabular.Column{Name: "id", Cells: []tabular.Value{int64(1), int64(2)}},
		tabular.Column{Name: "label", Cells: []tabular.Value{"a"}},
	)
	require.ErrorIs(t, err, tabular.ErrLengthMismatch)

	// Duplicate names must fail.
	_, err = tabular.NewTable(
		tabular.Column{Name: "id", Cells: []tabular.Value{int64(1)}},
		tabular.Column{Name: "id", Cells: []tabular.Value{int64(2)}},
	)
	require.ErrorIs(t, err, tabular.ErrDuplicateColumn)

	// Empty tables are valid and have zero rows.
	empty, err := tabular.NewTable()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 0, empty.NumCols())
}

func TestTable_SelectorResolution(t *testing.T) {
	t.Parallel()
	tbl := newSampleTable(t)

	// ByName hits.
	col, err := tbl.Column(tabular.ByName("label"))
	require.NoError(t, err)
	assert.Equal(t, []tabular.Value{"a", "b", "c"}, col.Cells)

	// ByIndex is 1-based: #1 is "id".
	col, err = tbl.Column(tabular.ByIndex(1))
	require.NoError(t, err)
	assert.Equal(t, "id", col.Name)

	// Missing name.
	_, err = tbl.Column(tabular.ByName("absent"))
	require.ErrorIs(t, err, tabular.ErrColumnNotFound)

	// Out-of-range positions, both edges.
	_, err = tbl.Column(tabular.ByIndex(0))
	require.ErrorIs(t, err, tabular.ErrColumnIndexOutOfRange)
	_, err = tbl.Column(tabular.ByIndex(4))
	require.ErrorIs(t, err, tabular.ErrColumnIndexOutOfRange)

	// Zero-value selector resolves to an error, never a column.
	_, err = tbl.Column(tabular.ColumnSelector{})
	require.ErrorIs(t, err, tabular.ErrColumnIndexOutOfRange)
}

func TestTable_AppendColumn(t *testing.T) {
	t.Parallel()
	tbl := newSampleTable(t)

	// Wrong length is rejected with no partial state.
	err := tbl.AppendColumn(tabular.Column{Name: "x", Cells: []tabular.Value{int64(1)}})
	require.ErrorIs(t, err, tabular.ErrLengthMismatch)
	assert.Equal(t, 3, tbl.NumCols())

	// Duplicate name is rejected.
	err = tbl.AppendColumn(tabular.Column{Name: "id", Cells: []tabular.Value{int64(7), int64(8), int64(9)}})
	require.ErrorIs(t, err, tabular.ErrDuplicateColumn)

	// Valid append lands on the right edge.
	err = tbl.AppendColumn(tabular.Column{Name: "x", Cells: []tabular.Value{true, false, true}})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "label", "weight", "x"}, tbl.ColumnNames())
}

func TestTable_Append_ColumnUnion(t *testing.T) {
	t.Parallel()
	base := newSampleTable(t)

	other, err := tabular.NewTable(
		tabular.Column{Name: "id", Cells: []tabular.Value{int64(4)}},
		tabular.Column{Name: "label", Cells: []tabular.Value{"d"}},
		tabular.Column{Name: "extra", Cells: []tabular.Value{"only-here"}},
	)
	require.NoError(t, err)

	merged, err := base.Append(other)
	require.NoError(t, err)

	// Base rows precede incoming rows; base column order is preserved.
	assert.Equal(t, 4, merged.NumRows())
	assert.Equal(t, []string{"id", "label", "weight", "extra"}, merged.ColumnNames())

	// Cells absent on either side are null.
	w, err := merged.Cell(3, tabular.ByName("weight"))
	require.NoError(t, err)
	assert.True(t, tabular.IsNull(w))
	e, err := merged.Cell(0, tabular.ByName("extra"))
	require.NoError(t, err)
	assert.True(t, tabular.IsNull(e))

	// Inputs stay untouched.
	assert.Equal(t, 3, base.NumRows())
	assert.Equal(t, 1, other.NumRows())
}

func TestTable_SelectAndRow(t *testing.T) {
	t.Parallel()
	tbl := newSampleTable(t)

	sub, err := tbl.Select([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.NumRows())

	row, err := sub.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []tabular.Value{int64(3), "c", 3.0}, row)

	_, err = tbl.Select([]int{3})
	require.ErrorIs(t, err, tabular.ErrRowIndexOutOfRange)
	_, err = tbl.Row(-1)
	require.ErrorIs(t, err, tabular.ErrRowIndexOutOfRange)
}

func TestTable_CloneIsDeep(t *testing.T) {
	t.Parallel()
	tbl := newSampleTable(t)
	cp := tbl.Clone()

	// Mutate the clone; the original must not observe it.
	require.NoError(t, cp.MapColumn(tabular.ByName("id"), func(v tabular.Value) tabular.Value {
		return v.(int64) + 100
	}))

	orig, err := tbl.Cell(0, tabular.ByName("id"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), orig)

	moved, err := cp.Cell(0, tabular.ByName("id"))
	require.NoError(t, err)
	assert.Equal(t, int64(101), moved)
}

func TestTable_SetColumn(t *testing.T) {
	t.Parallel()
	tbl := newSampleTable(t)

	// Replacing an existing column keeps its position.
	err := tbl.SetColumn(tabular.Column{Name: "label", Cells: []tabular.Value{"x", "y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "label", "weight"}, tbl.ColumnNames())

	// Absent column is appended.
	err = tbl.SetColumn(tabular.Column{Name: "grp", Cells: []tabular.Value{nil, nil, "g"}})
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.NumCols())

	// Length mismatch is rejected.
	err = tbl.SetColumn(tabular.Column{Name: "grp", Cells: []tabular.Value{"g"}})
	require.ErrorIs(t, err, tabular.ErrLengthMismatch)
}
