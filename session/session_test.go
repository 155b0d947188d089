package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResources(t *testing.T) {
	sn := NewSession()

	_, err := sn.Apply(Command{Op: NewUInt, Value: 12, Output: "MyInt"})
	assert.NoError(t, err)
	assert.Equal(t, 12, sn.Resources["MyInt"].UInt)
	assert.Equal(t, UIntKind, sn.Resources["MyInt"].Kind)

	// Ids are unique
	_, err = sn.Apply(Command{Op: NewUInt, Value: 223, Output: "MyInt"})
	assert.Error(t, err)
	_, err = sn.Apply(Command{Op: NewMesh2D})
	assert.Error(t, err) // empty output id

	_, err = sn.Apply(Command{Op: NewFloats, Coords: []float64{0, 25, 6}, Output: "MyFloats"})
	assert.NoError(t, err)
	assert.Equal(t, 25., sn.Resources["MyFloats"].Floats[1])

	_, err = sn.Apply(Command{Op: NewMesh2D, Output: "MyMesh"})
	assert.NoError(t, err)
	assert.Equal(t, Mesh2DKind, sn.Resources["MyMesh"].Kind)
	_, err = sn.Apply(Command{Op: NewMesh3D, Output: "MyMesh3d"})
	assert.NoError(t, err)
	assert.Equal(t, Mesh3DKind, sn.Resources["MyMesh3d"].Kind)

	assert.Equal(t, "uint", UIntKind.String())
	assert.Equal(t, "topology", TopologyKind.String())
	assert.Panics(t, func() { _ = ResourceKind(9).String() })

	assert.Equal(t, 4, len(sn.History))
}

func TestPushAndGet(t *testing.T) {
	sn := NewSession()

	_, err := sn.Apply(Command{Op: NewMesh2D, Output: "MyMesh"})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: PushVertex, Mesh: "MyMesh", Coords: []float64{0, 1}})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: PushVertex, Mesh: "MyMesh", Coords: []float64{6, 1}, Tag: "corner"})
	assert.NoError(t, err)

	res, err := sn.Apply(Command{Op: GetVertex, Mesh: "MyMesh", Index: 1, Output: "MyVertex"})
	assert.NoError(t, err)
	assert.Equal(t, []float64{6, 1}, res.Coords)
	assert.Equal(t, []float64{6, 1}, sn.Resources["MyVertex"].Floats)

	// The index can come from a uint resource
	_, err = sn.Apply(Command{Op: NewUInt, Value: 0, Output: "MyIdx"})
	assert.NoError(t, err)
	res, err = sn.Apply(Command{Op: GetVertex, Mesh: "MyMesh", ID: "MyIdx"})
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, res.Coords)

	_, err = sn.Apply(Command{Op: PushEdge, Mesh: "MyMesh", Verts: []int{0, 1}, Tag: "wall"})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: PushTri, Mesh: "MyMesh", Verts: []int{0, 1, 1}})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: PushQuad, Mesh: "MyMesh", Verts: []int{0, 1, 1, 0}})
	assert.NoError(t, err)

	res, err = sn.Apply(Command{Op: TagIndexes, Mesh: "MyMesh", Tag: "corner"})
	assert.NoError(t, err)
	assert.Equal(t, map[string][]int{"vertices": {1}}, res.Tags)
	res, err = sn.Apply(Command{Op: TagIndexes, Mesh: "MyMesh", Tag: "wall"})
	assert.NoError(t, err)
	assert.Equal(t, map[string][]int{"edges": {0}}, res.Tags)

	// 3d meshes take 3 coordinates
	_, err = sn.Apply(Command{Op: NewMesh3D, Output: "M3"})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: PushVertex, Mesh: "M3", Coords: []float64{1, 2, 5.6}})
	assert.NoError(t, err)
	res, err = sn.Apply(Command{Op: GetVertex, Mesh: "M3", Index: 0})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 5.6}, res.Coords)
	_, err = sn.Apply(Command{Op: PushVertex, Mesh: "M3", Coords: []float64{1, 2}})
	assert.Error(t, err)
}

func TestApplyErrors(t *testing.T) {
	sn := NewSession()

	_, err := sn.Apply(Command{Op: "frobnicate"})
	assert.Error(t, err)
	_, err = sn.Apply(Command{Op: PushVertex, Mesh: "nope", Coords: []float64{0, 0}})
	assert.Error(t, err)

	_, err = sn.Apply(Command{Op: NewUInt, Value: 3, Output: "N"})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: PushVertex, Mesh: "N", Coords: []float64{0, 0}})
	assert.Error(t, err) // wrong resource kind
	_, err = sn.Apply(Command{Op: NewMesh2D, Output: "M"})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: GetVertex, Mesh: "M", Index: 0})
	assert.Error(t, err) // out of range
	_, err = sn.Apply(Command{Op: PushEdge, Mesh: "M", Verts: []int{0}})
	assert.Error(t, err) // wrong arity
	_, err = sn.Apply(Command{Op: TagIndexes, Mesh: "M", Tag: "nothing"})
	assert.Error(t, err)
	_, err = sn.Apply(Command{Op: ReadSU2, Path: "no_such_file.su2", Output: "F"})
	assert.Error(t, err)
	_, err = sn.Apply(Command{Op: BoundaryEdges, Topology: "M"})
	assert.Error(t, err)

	// A dangling vertex index surfaces as an error, not a fault
	_, err = sn.Apply(Command{Op: PushEdge, Mesh: "M", Verts: []int{0, 5}})
	assert.NoError(t, err)
	_, err = sn.Apply(Command{Op: BuildTopology, Mesh: "M", Output: "T"})
	assert.Error(t, err)
	_, ok := sn.Resources["T"]
	assert.False(t, ok)

	// Failed commands are not recorded
	assert.Equal(t, 3, len(sn.History))
}

func TestApplyQueued(t *testing.T) {
	sn := NewSession()
	sn.Push(Command{Op: NewMesh2D, Output: "M"})
	sn.Push(Command{Op: PushVertex, Mesh: "missing", Coords: []float64{0, 0}})
	sn.Push(Command{Op: NewUInt, Value: 1, Output: "N"})

	results, err := sn.ApplyQueued()
	assert.Error(t, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, 2, len(sn.Queue)) // failing command stays queued
	assert.Equal(t, 1, len(sn.History))

	// Drop the bad command and the rest applies
	sn.Queue = sn.Queue[1:]
	results, err = sn.ApplyQueued()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, 0, len(sn.Queue))
	assert.Equal(t, 2, len(sn.History))
}

func TestRunScript(t *testing.T) {
	script := []byte(`
- {op: new_mesh2d, output: square}
- {op: push_vertex, mesh: square, coords: [0, 0]}
- {op: push_vertex, mesh: square, coords: [1, 0]}
- {op: push_vertex, mesh: square, coords: [1, 1]}
- {op: push_vertex, mesh: square, coords: [0, 1]}
- {op: push_edge, mesh: square, verts: [0, 1], tag: bottom}
- {op: push_edge, mesh: square, verts: [1, 2], tag: right}
- {op: push_edge, mesh: square, verts: [2, 3], tag: top}
- {op: push_edge, mesh: square, verts: [3, 0], tag: left}
- {op: push_tri, mesh: square, verts: [0, 1, 2]}
- {op: push_tri, mesh: square, verts: [2, 3, 0]}
- {op: build_topology, mesh: square, value: 2, output: topo}
- {op: boundary_edges, topology: topo}
- {op: quality_report, mesh: square}
- {op: tag_indices, mesh: square, tag: top}
`)
	fname := filepath.Join(t.TempDir(), "square.yaml")
	assert.NoError(t, os.WriteFile(fname, script, 0644))

	sn := NewSession()
	results, err := sn.RunScript(fname)
	assert.NoError(t, err)
	assert.Equal(t, 15, len(results))
	assert.Equal(t, 15, len(sn.History))
	assert.Equal(t, 0, len(sn.Queue))

	assert.Equal(t, []int{0, 1, 2, 3}, results[12].Indexes)
	assert.Equal(t, 2, results[13].Report.NumTris)
	assert.Equal(t, 4, results[13].Report.NumVertices)
	assert.Equal(t, map[string][]int{"edges": {2}}, results[14].Tags)

	// Results serialize for remote clients
	data, err := json.Marshal(results[13])
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"op":"quality_report"`)
	assert.Contains(t, string(data), `"report"`)

	_, err = sn.RunScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
