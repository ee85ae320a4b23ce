// SPDX-License-Identifier: MIT
// Package: graphframe/snapshot
//
// errors.go — sentinel errors for the snapshot package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Storage-backend errors (badger, filesystem) are wrapped with %w so
//     the cause chain stays inspectable.

package snapshot

import "errors"

// ErrNilGraph indicates a nil container was passed to an encoder or writer.
var ErrNilGraph = errors.New("snapshot: nil graph")

// ErrNilDocument indicates a nil document was passed to Decode.
var ErrNilDocument = errors.New("snapshot: nil document")

// ErrBadDocument indicates a document that cannot be restored: unknown
// cell tag, malformed attribute kind, or tables the container rejects.
var ErrBadDocument = errors.New("snapshot: malformed document")

// ErrNotFound indicates the requested snapshot version does not exist.
var ErrNotFound = errors.New("snapshot: version not found")

// ErrNoSnapshots indicates an empty store or directory on a latest-lookup.
var ErrNoSnapshots = errors.New("snapshot: no snapshots")
