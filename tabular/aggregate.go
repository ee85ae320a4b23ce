// SPDX-License-Identifier: MIT
// Package: graphframe/tabular
//
// aggregate.go — scalar aggregation over a (filtered) column.
//
// Contract:
//   - Supported kinds: sum, min, max, mean, median. Anything else fails
//     with ErrUnsupportedAggregation (via ParseAgg).
//   - Null and non-numeric cells are excluded from the sample, never
//     treated as zero.
//   - An empty sample yields NaN and a nil error; emptiness is a documented
//     outcome, not a failure.
//   - Median of an even-sized sample is the mean of the two middle values.
//
// Determinism:
//   - Fixed ascending row traversal; sorting uses a copied sample.

package tabular

import (
	"fmt"
	"math"
	"sort"
)

// AggKind selects one of the supported aggregation functions.
type AggKind uint8

const (
	// AggSum totals the sample.
	AggSum AggKind = iota + 1
	// AggMin takes the smallest sample value.
	AggMin
	// AggMax takes the largest sample value.
	AggMax
	// AggMean averages the sample.
	AggMean
	// AggMedian takes the sample midpoint.
	AggMedian
)

// String renders the kind in its canonical lower-case spelling.
func (k AggKind) String() string {
	switch k {
	case AggSum:
		return "sum"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggMean:
		return "mean"
	case AggMedian:
		return "median"
	default:
		return "unknown"
	}
}

const (
	opParseAgg  = "ParseAgg"
	opAggregate = "Aggregate"
)

// ParseAgg maps a canonical name onto its AggKind.
// Errors: ErrUnsupportedAggregation for any unrecognized name.
func ParseAgg(name string) (AggKind, error) {
	switch name {
	case "sum":
		return AggSum, nil
	case "min":
		return AggMin, nil
	case "max":
		return AggMax, nil
	case "mean":
		return AggMean, nil
	case "median":
		return AggMedian, nil
	default:
		return 0, fmt.Errorf("%s: %q: %w", opParseAgg, name, ErrUnsupportedAggregation)
	}
}

// Aggregate computes kind over the column addressed by sel, restricted to
// rows matching ALL filters. Null and non-numeric cells are dropped from
// the sample; an empty sample returns NaN with a nil error.
// Errors: ErrNilTable, selector sentinels, ErrUnknownFilterOp,
// ErrUnsupportedAggregation (kind outside the closed set).
// Complexity: O(R * len(filters)) + O(S log S) for median, S = sample size.
func Aggregate(t *Table, sel ColumnSelector, kind AggKind, filters ...Filter) (float64, error) {
	if t == nil {
		return 0, tabularErrorf(opAggregate, ErrNilTable)
	}
	if kind < AggSum || kind > AggMedian {
		return 0, fmt.Errorf("%s: kind %d: %w", opAggregate, kind, ErrUnsupportedAggregation)
	}

	idx, err := sel.Resolve(t)
	if err != nil {
		return 0, tabularErrorf(opAggregate, err)
	}
	rows, err := ApplyFilters(t, filters...)
	if err != nil {
		return 0, tabularErrorf(opAggregate, err)
	}

	// Collect the numeric sample in row order; nulls and non-numerics drop.
	sample := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := AsFloat(t.cols[idx].Cells[r]); ok {
			sample = append(sample, v)
		}
	}
	if len(sample) == 0 {
		return math.NaN(), nil
	}

	switch kind {
	case AggSum:
		return sum(sample), nil
	case AggMin:
		m := sample[0]
		for _, v := range sample[1:] {
			if v < m {
				m = v
			}
		}

		return m, nil
	case AggMax:
		m := sample[0]
		for _, v := range sample[1:] {
			if v > m {
				m = v
			}
		}

		return m, nil
	case AggMean:
		return sum(sample) / float64(len(sample)), nil
	default: // AggMedian, guarded above.
		cp := make([]float64, len(sample))
		copy(cp, sample)
		sort.Float64s(cp)
		mid := len(cp) / 2
		if len(cp)%2 == 1 {
			return cp[mid], nil
		}

		return (cp[mid-1] + cp[mid]) / 2, nil
	}
}

// sum is the shared accumulation kernel.
func sum(xs []float64) float64 {
	var s float64
	for _, v := range xs {
		s += v
	}

	return s
}
