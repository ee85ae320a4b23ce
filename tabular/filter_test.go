// SPDX-License-Identifier: MIT
// Package tabular_test verifies the closed filter expression: AND
// intersection across filters, null-never-matches, and the numeric /
// lexical / boolean comparison policy.

package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphframe/graphframe/tabular"
)

// newFilterTable builds rows with mixed-typed cells:
//
//	n     | s    | flag
//	 1    | "aa" | true
//	 2    | "bb" | false
//	 nil  | "cc" | true
//	 4    | nil  | false
func newFilterTable(t *testing.T) *tabular.Table {
	t.Helper()
	tbl, err := tabular.NewTable(
		tabular.Column{Name: "n", Cells: []tabular.Value{int64(1), int64(2), nil, int64(4)}},
		tabular.Column{Name: "s", Cells: []tabular.Value{"aa", "bb", "cc", nil}},
		tabular.Column{Name: "flag", Cells: []tabular.Value{true, false, true, false}},
	)
	require.NoError(t, err)

	return tbl
}

func TestApplyFilters_Semantics(t *testing.T) {
	t.Parallel()
	tbl := newFilterTable(t)

	tests := []struct {
		name    string
		filters []tabular.Filter
		want    []int
	}{
		{
			name:    "no filters keeps every row",
			filters: nil,
			want:    []int{0, 1, 2, 3},
		},
		{
			name: "numeric greater-equal",
			filters: []tabular.Filter{
				{Col: tabular.ByName("n"), Op: tabular.FilterGe, Lit: int64(2)},
			},
			want: []int{1, 3},
		},
		{
			name: "lexical less-than",
			filters: []tabular.Filter{
				{Col: tabular.ByName("s"), Op: tabular.FilterLt, Lit: "cc"},
			},
			want: []int{0, 1},
		},
		{
			name: "boolean equality",
			filters: []tabular.Filter{
				{Col: tabular.ByName("flag"), Op: tabular.FilterEq, Lit: true},
			},
			want: []int{0, 2},
		},
		{
			name: "AND intersection across filters",
			filters: []tabular.Filter{
				{Col: tabular.ByName("n"), Op: tabular.FilterGt, Lit: int64(0)},
				{Col: tabular.ByName("flag"), Op: tabular.FilterEq, Lit: false},
			},
			want: []int{1, 3},
		},
		{
			name: "null never matches Ne",
			filters: []tabular.Filter{
				{Col: tabular.ByName("n"), Op: tabular.FilterNe, Lit: int64(99)},
			},
			want: []int{0, 1, 3},
		},
		{
			name: "mixed types never order",
			filters: []tabular.Filter{
				{Col: tabular.ByName("s"), Op: tabular.FilterGt, Lit: int64(1)},
			},
			want: []int{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.ApplyFilters(tbl, tc.filters...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyFilters_Errors(t *testing.T) {
	t.Parallel()
	tbl := newFilterTable(t)

	// Unresolvable selector surfaces its sentinel.
	_, err := tabular.ApplyFilters(tbl, tabular.Filter{
		Col: tabular.ByName("missing"), Op: tabular.FilterEq, Lit: int64(1),
	})
	require.ErrorIs(t, err, tabular.ErrColumnNotFound)

	// Operator outside the closed set is rejected up front.
	_, err = tabular.ApplyFilters(tbl, tabular.Filter{
		Col: tabular.ByName("n"), Op: tabular.FilterOp(42), Lit: int64(1),
	})
	require.ErrorIs(t, err, tabular.ErrUnknownFilterOp)

	// Nil table.
	_, err = tabular.ApplyFilters(nil)
	require.ErrorIs(t, err, tabular.ErrNilTable)
}
