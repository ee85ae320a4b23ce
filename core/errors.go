// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// errors.go — sentinel errors for the core container.
//
// Error policy (strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping and the operation
//     name constants from log.go.
//   - Runtime methods never panic; validation panics are confined to
//     option constructors (WithX...).
//   - Every mutator validates completely before touching state: a returned
//     error guarantees the container is unchanged and nothing was logged.

package core

import (
	"errors"
	"fmt"
)

// ErrNilGraph indicates an operation received a nil *Graph.
var ErrNilGraph = errors.New("core: nil graph")

// ErrInvalidGraph indicates a malformed container: missing schema columns,
// non-integer or duplicated IDs, or counters below the highest allocated ID.
// Usage: if errors.Is(err, ErrInvalidGraph) { /* inspect the wrapped detail */ }.
var ErrInvalidGraph = errors.New("core: invalid graph object")

// ErrNodeNotFound indicates an operation referenced a non-existent node ID.
var ErrNodeNotFound = errors.New("core: node not found")

// ErrEdgeNotFound indicates an operation referenced a non-existent edge ID.
var ErrEdgeNotFound = errors.New("core: edge not found")

// ErrEdgeEndpointMissing indicates an edge whose from/to does not reference
// an existing node ID at commit time.
var ErrEdgeEndpointMissing = errors.New("core: edge endpoint references missing node")

// ErrDirectedMismatch indicates a composition of graphs with differing
// directedness without an explicit coercion (WithCoerceDirected).
var ErrDirectedMismatch = errors.New("core: directedness mismatch")

// ErrReservedColumn indicates an attribute operation targeting one of the
// fixed schema columns (id, type, label, from, to, rel).
var ErrReservedColumn = errors.New("core: reserved schema column")

// ErrAttrNotFound indicates a lookup of an absent attribute column or
// global attribute binding.
var ErrAttrNotFound = errors.New("core: attribute not found")

// ErrNilAction indicates RegisterAction received a nil callback.
var ErrNilAction = errors.New("core: nil graph action")

// ErrDuplicateAction indicates RegisterAction received an already
// registered action name.
var ErrDuplicateAction = errors.New("core: duplicate graph action")

// ErrActionNotFound indicates DeregisterAction received an unknown name.
var ErrActionNotFound = errors.New("core: graph action not found")

// coreErrorf prefixes err with operation context, preserving the sentinel
// for errors.Is.
func coreErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
