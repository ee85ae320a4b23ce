// Package snapshot persists graphframe containers: a JSON document codec
// for the full container state (directedness, both tables, counters,
// action log, global attributes), a file-based writer implementing
// core.SnapshotWriter, and an embedded BadgerDB store for versioned
// snapshot history.
//
// The codec is lossless for the conventional cell types (null, string,
// bool, int64, float64): Decode(Encode(g)) reproduces the container's
// tables, counters and log, and the restored container continues the
// original version sequence.
//
// Writers are best-effort collaborators: the container logs and ignores
// their failures, so persistence problems never fail a mutation.
//
// Typical wiring:
//
//	w := snapshot.NewFileWriter("backups")
//	g := core.NewGraph(core.WithSnapshotWriter(w), core.WithBackups())
//
// or, for versioned history in an embedded store:
//
//	cfg := snapshot.DefaultConfig()
//	cfg.Path = "graph.db"
//	st, _ := snapshot.Open(cfg)
//	defer st.Close()
//	g := core.NewGraph(core.WithSnapshotWriter(st), core.WithBackups())
package snapshot
