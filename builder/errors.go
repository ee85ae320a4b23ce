// SPDX-License-Identifier: MIT
// Package: graphframe/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors validate parameters early and return sentinels before
//     any mutation reaches the target graph (no partial state).
//   - Option constructors (WithX...) panic on meaningless input; the
//     constructors themselves never panic at runtime.
//   - Length mismatches reuse tabular.ErrLengthMismatch; container
//     failures surface core sentinels unchanged.

package builder

import "errors"

// ErrMinimumSize indicates a size parameter below the constructor's
// minimum (star n < 4, cycle n < 3, path n < 2, node sequence n < 1).
// Usage: if errors.Is(err, ErrMinimumSize) { /* report invalid size */ }.
var ErrMinimumSize = errors.New("builder: size below constructor minimum")

// ErrBadSize indicates a negative or otherwise meaningless count that is
// not a minimum-size violation (e.g. a negative edge budget).
var ErrBadSize = errors.New("builder: invalid size")

// ErrTooManyEdges indicates a random-graph edge budget exceeding the
// simple-graph capacity for the requested node count.
var ErrTooManyEdges = errors.New("builder: edge budget exceeds capacity")

// ErrConstructFailed indicates orchestration failure (nil constructor
// passed to BuildGraph, nil target graph).
var ErrConstructFailed = errors.New("builder: construction failed")
