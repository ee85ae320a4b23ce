// SPDX-License-Identifier: MIT
// Package snapshot_test verifies the document codec, the file writer and
// the badger store against live containers.
package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphframe/graphframe/builder"
	"github.com/graphframe/graphframe/core"
	"github.com/graphframe/graphframe/snapshot"
	"github.com/graphframe/graphframe/tabular"
)

// seedGraph builds a small directed container exercising every cell type.
func seedGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, builder.AddStar(g, 4, builder.WithType("hub-and-spoke")))
	require.NoError(t, g.SetNodeAttrs("weight", map[int64]tabular.Value{
		1: 3.5, 2: int64(7), 3: "heavy",
	}))
	require.NoError(t, g.SetEdgeAttrs("active", map[int64]tabular.Value{1: true}))
	require.NoError(t, g.SetGlobalAttr("layout", "dot", core.AttrGraph))
	return g
}

func TestDocument_RoundTrip(t *testing.T) {
	g := seedGraph(t)

	doc, err := snapshot.Encode(g)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, len(g.Log()), doc.Version)

	restored, err := snapshot.Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, g.Directed(), restored.Directed())
	assert.Equal(t, g.NodeIDs(), restored.NodeIDs())
	assert.Equal(t, g.EdgeIDs(), restored.EdgeIDs())
	assert.Equal(t, g.LastNodeID(), restored.LastNodeID())
	assert.Equal(t, g.LastEdgeID(), restored.LastEdgeID())
	assert.Equal(t, g.GlobalAttrs(), restored.GlobalAttrs())

	// Every cell type survives.
	for id, want := range map[int64]tabular.Value{1: 3.5, 2: int64(7), 3: "heavy"} {
		got, attrErr := restored.NodeAttr(id, "weight")
		require.NoError(t, attrErr)
		assert.Equal(t, want, got)
	}
	null, err := restored.NodeAttr(4, "weight")
	require.NoError(t, err)
	assert.True(t, tabular.IsNull(null))
	active, err := restored.EdgeAttr(1, "active")
	require.NoError(t, err)
	assert.Equal(t, true, active)

	require.NoError(t, restored.Validate())
}

// A restored container continues the original version sequence instead of
// restarting at 1.
func TestDocument_RestoredHistoryContinues(t *testing.T) {
	g := seedGraph(t)
	before := len(g.Log())

	doc, err := snapshot.Encode(g)
	require.NoError(t, err)
	restored, err := snapshot.Decode(doc)
	require.NoError(t, err)

	require.Len(t, restored.Log(), before)
	_, err = restored.AddNode("", "")
	require.NoError(t, err)

	log := restored.Log()
	assert.Equal(t, before+1, log[len(log)-1].Version)
}

// Counters survive even when they exceed the highest surviving ID.
func TestDocument_CounterFloorSurvivesDeletes(t *testing.T) {
	g := seedGraph(t)
	require.NoError(t, g.DeleteNode(4))
	require.Equal(t, int64(4), g.LastNodeID())

	doc, err := snapshot.Encode(g)
	require.NoError(t, err)
	restored, err := snapshot.Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, int64(4), restored.LastNodeID())
	id, err := restored.AddNode("", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestDecode_Errors(t *testing.T) {
	_, err := snapshot.Decode(nil)
	assert.ErrorIs(t, err, snapshot.ErrNilDocument)

	_, err = snapshot.Encode(nil)
	assert.ErrorIs(t, err, snapshot.ErrNilGraph)
}

func TestFileWriter_BackupAndLatest(t *testing.T) {
	dir := t.TempDir()
	w := snapshot.NewFileWriter(dir, snapshot.WithPrefix("flow"))

	g := core.NewGraph(
		core.WithDirected(true),
		core.WithSnapshotWriter(w),
		core.WithBackups(),
	)
	require.NoError(t, builder.AddCycle(g, 3))
	_, err := g.AddNode("stage", "sink")
	require.NoError(t, err)

	// One file per mutation (create + cycle + node).
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Name(), "flow_"))
		assert.True(t, strings.HasSuffix(e.Name(), ".json"))
	}

	restored, err := w.Latest()
	require.NoError(t, err)
	assert.Equal(t, g.NodeIDs(), restored.NodeIDs())
	assert.Equal(t, g.EdgeIDs(), restored.EdgeIDs())
	assert.Len(t, restored.Log(), len(g.Log()))
}

func TestFileWriter_LatestPicksHighestVersion(t *testing.T) {
	dir := t.TempDir()
	w := snapshot.NewFileWriter(dir)

	g := core.NewGraph()
	require.NoError(t, w.WriteSnapshot(g)) // version 1
	_, err := g.AddNode("", "")
	require.NoError(t, err)
	require.NoError(t, w.WriteSnapshot(g)) // version 2

	restored, err := w.Latest()
	require.NoError(t, err)
	assert.Equal(t, 1, restored.NodeCount())
}

func TestFileWriter_NoSnapshots(t *testing.T) {
	_, err := snapshot.NewFileWriter(filepath.Join(t.TempDir(), "missing")).Latest()
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshots)

	_, err = snapshot.NewFileWriter(t.TempDir()).Latest()
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshots)
}

func TestStore_WriteLoadVersions(t *testing.T) {
	st, err := snapshot.Open(snapshot.InMemoryConfig())
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, st.WriteSnapshot(g)) // version 1
	require.NoError(t, builder.AddPath(g, 2))
	require.NoError(t, st.WriteSnapshot(g)) // version 2
	_, err = g.AddEdge(2, 1, "back")
	require.NoError(t, err)
	require.NoError(t, st.WriteSnapshot(g)) // version 3

	versions, err := st.Versions()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, versions)

	v2, err := st.Load(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v2.NodeCount())
	assert.Equal(t, 1, v2.EdgeCount())

	latest, err := st.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, 2, latest.EdgeCount())

	_, err = st.Load(99)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestStore_AsBackupWriter(t *testing.T) {
	st, err := snapshot.Open(snapshot.InMemoryConfig())
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	g := core.NewGraph(
		core.WithSnapshotWriter(st),
		core.WithBackups(),
	)
	require.NoError(t, builder.AddCycle(g, 3))

	versions, err := st.Versions()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, versions) // create + cycle

	latest, err := st.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, 3, latest.NodeCount())
}

func TestStore_LoadLatestEmpty(t *testing.T) {
	st, err := snapshot.Open(snapshot.InMemoryConfig())
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	_, err = st.LoadLatest()
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshots)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := snapshot.Open(snapshot.DefaultConfig())
	assert.Error(t, err)
}
