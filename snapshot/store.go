// SPDX-License-Identifier: MIT
// Package: graphframe/snapshot
//
// store.go — versioned snapshot history in an embedded BadgerDB.
//
// Contract:
//   - Implements core.SnapshotWriter; each write stores one document
//     under snapshot/<version as %016x>, so key order equals version
//     order and a reverse scan finds the latest.
//   - Writing the same version again overwrites (last write wins).
//   - The store is safe for concurrent use; Close is final.

package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/graphframe/graphframe/core"
)

// keyPrefix namespaces snapshot documents inside the database.
const keyPrefix = "snapshot/"

// Config holds configuration for a snapshot Store.
type Config struct {
	// Path is the directory for BadgerDB files.
	// Required unless InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	// Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's operational logging.
	// If nil, BadgerDB's internal logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns durable production defaults (sync writes on).
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests: in-memory, no sync.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store keeps every written snapshot version in an embedded BadgerDB.
type Store struct {
	db *badger.DB
}

// Open creates and opens a Store with the given configuration, creating
// the directory when needed.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("snapshot: path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("snapshot: create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open store: %w", err)
	}

	return &Store{db: db}, nil
}

// WriteSnapshot encodes g and stores it under its version key.
// Errors: ErrNilGraph, ErrBadDocument, badger failures.
func (s *Store) WriteSnapshot(g *core.Graph) error {
	doc, err := Encode(g)
	if err != nil {
		return fmt.Errorf("WriteSnapshot: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("WriteSnapshot: marshal: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(versionKey(doc.Version), data)
	})
	if err != nil {
		return fmt.Errorf("WriteSnapshot: version %d: %w", doc.Version, err)
	}

	return nil
}

// Load restores the container stored for one version.
// Errors: ErrNotFound, ErrBadDocument, badger failures.
func (s *Store) Load(version int) (*core.Graph, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(versionKey(version))
		if getErr != nil {
			return getErr
		}
		data, getErr = item.ValueCopy(nil)

		return getErr
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("Load: version %d: %w", version, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Load: version %d: %w", version, err)
	}

	return decodeData(data)
}

// LoadLatest restores the highest stored version.
// Errors: ErrNoSnapshots, ErrBadDocument, badger failures.
func (s *Store) LoadLatest() (*core.Graph, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must seek past the whole prefix range.
		it.Seek([]byte(keyPrefix + "\xff"))
		if !it.ValidForPrefix([]byte(keyPrefix)) {
			return ErrNoSnapshots
		}
		var copyErr error
		data, copyErr = it.Item().ValueCopy(nil)

		return copyErr
	})
	if err != nil {
		return nil, fmt.Errorf("LoadLatest: %w", err)
	}

	return decodeData(data)
}

// Versions lists the stored versions in ascending order.
func (s *Store) Versions() ([]int, error) {
	var versions []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(keyPrefix)); it.ValidForPrefix([]byte(keyPrefix)); it.Next() {
			var v int
			if _, scanErr := fmt.Sscanf(string(it.Item().Key()), keyPrefix+"%016x", &v); scanErr != nil {
				continue
			}
			versions = append(versions, v)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Versions: %w", err)
	}

	return versions, nil
}

// Close releases the underlying database. Further calls fail.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

// decodeData unmarshals and restores one stored document.
func decodeData(data []byte) (*core.Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal: %w", err)
	}

	return Decode(&doc)
}

// versionKey renders snapshot/<version as %016x>.
func versionKey(version int) []byte {
	return []byte(fmt.Sprintf("%s%016x", keyPrefix, version))
}

// compile-time contract: Store is a core persistence collaborator.
var _ core.SnapshotWriter = (*Store)(nil)
