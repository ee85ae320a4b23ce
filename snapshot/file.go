// SPDX-License-Identifier: MIT
// Package: graphframe/snapshot
//
// file.go — the file-based snapshot writer.
//
// Contract:
//   - Implements core.SnapshotWriter; attach via core.WithSnapshotWriter
//     plus core.WithBackups.
//   - Each write lands as <dir>/<prefix>_<version padded to 6>_<uuid>.json,
//     0644, with the directory created on first use. The uuid keeps
//     concurrent writers of the same version from clobbering each other.
//   - Latest() picks the highest version among matching files; ties
//     break lexicographically (deterministic, arbitrary among equals).

package snapshot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/graphframe/graphframe/core"
)

// defaultPrefix names snapshot files when no option overrides it.
const defaultPrefix = "graph"

// fileVersionWidth pads versions so lexicographic and numeric file order
// agree up to 999999 mutations.
const fileVersionWidth = 6

// FileWriter persists one JSON document per container version into a
// directory.
type FileWriter struct {
	dir    string
	prefix string
	logger *slog.Logger
}

// FileOption customizes a FileWriter.
type FileOption func(*FileWriter)

// WithPrefix overrides the file name prefix. Panics on empty.
func WithPrefix(prefix string) FileOption {
	if prefix == "" {
		panic("snapshot: WithPrefix(empty)")
	}

	return func(w *FileWriter) { w.prefix = prefix }
}

// WithFileLogger attaches a logger for write diagnostics. Panics on nil.
func WithFileLogger(l *slog.Logger) FileOption {
	if l == nil {
		panic("snapshot: WithFileLogger(nil)")
	}

	return func(w *FileWriter) { w.logger = l }
}

// NewFileWriter creates a writer rooted at dir. The directory is created
// lazily on the first write.
func NewFileWriter(dir string, opts ...FileOption) *FileWriter {
	w := &FileWriter{dir: dir, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteSnapshot encodes g and writes one document file.
// Errors: ErrNilGraph, ErrBadDocument, filesystem failures.
// Complexity: O(V + E + len(log)).
func (w *FileWriter) WriteSnapshot(g *core.Graph) error {
	doc, err := Encode(g)
	if err != nil {
		return fmt.Errorf("WriteSnapshot: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteSnapshot: marshal: %w", err)
	}

	if err = os.MkdirAll(w.dir, 0o750); err != nil {
		return fmt.Errorf("WriteSnapshot: mkdir %s: %w", w.dir, err)
	}

	name := fmt.Sprintf("%s_%0*d_%s.json", w.prefix, fileVersionWidth, doc.Version, doc.ID)
	path := filepath.Join(w.dir, name)
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("WriteSnapshot: write %s: %w", path, err)
	}

	if w.logger != nil {
		w.logger.Debug("snapshot written", "path", path, "version", doc.Version)
	}

	return nil
}

// Latest restores the container from the highest-versioned snapshot file
// in the directory.
// Errors: ErrNoSnapshots, ErrBadDocument, filesystem failures.
func (w *FileWriter) Latest() (*core.Graph, error) {
	path, err := w.latestPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Latest: read %s: %w", path, err)
	}

	var doc Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Latest: unmarshal %s: %w", path, err)
	}

	return Decode(&doc)
}

// latestPath scans the directory for the highest-versioned matching file.
func (w *FileWriter) latestPath() (string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("Latest: %s: %w", w.dir, ErrNoSnapshots)
		}

		return "", fmt.Errorf("Latest: read dir %s: %w", w.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := w.parseVersion(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("Latest: %s: %w", w.dir, ErrNoSnapshots)
	}

	sort.Slice(names, func(i, j int) bool {
		vi, _ := w.parseVersion(names[i])
		vj, _ := w.parseVersion(names[j])
		if vi != vj {
			return vi > vj
		}

		return names[i] < names[j]
	})

	return filepath.Join(w.dir, names[0]), nil
}

// parseVersion extracts the version from "<prefix>_<version>_<uuid>.json".
func (w *FileWriter) parseVersion(name string) (int, bool) {
	if !strings.HasPrefix(name, w.prefix+"_") || !strings.HasSuffix(name, ".json") {
		return 0, false
	}
	rest := strings.TrimPrefix(name, w.prefix+"_")
	idx := strings.IndexByte(rest, '_')
	if idx < 0 {
		return 0, false
	}
	v, err := strconv.Atoi(rest[:idx])
	if err != nil {
		return 0, false
	}

	return v, true
}

// compile-time contract: FileWriter is a core persistence collaborator.
var _ core.SnapshotWriter = (*FileWriter)(nil)
