// SPDX-License-Identifier: MIT
// Package: graphframe/metrics
//
// errors.go — sentinel errors for the metrics package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Measures validate the container before converting; no partial maps.

package metrics

import "errors"

// ErrNilGraph indicates a nil container was passed to a measure.
var ErrNilGraph = errors.New("metrics: nil graph")

// ErrEmptyGraph indicates a container with no nodes; degree and coreness
// maps over the empty node set carry no information, so measures refuse
// rather than return an empty map.
var ErrEmptyGraph = errors.New("metrics: empty graph")
