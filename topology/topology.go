package topology

import "github.com/notargets/gomesh/mesh"

// VertexTopology collects the elements incident to one vertex.
type VertexTopology struct {
	IncidentEdges []VertexToEdge
	IncidentTris  []VertexToTri
}

// EdgeTopology collects the neighbors of one edge: edges sharing an
// endpoint and triangles the edge is a local edge of.
type EdgeTopology struct {
	EdgeConnections []EdgeToEdge
	TriConnections  []EdgeToTri
}

// TriTopology collects the triangles bordering one triangle across a
// shared edge.
type TriTopology struct {
	TriConnections []TriToTri
}

// Topology derives connectivity for element arrays indexing a shared
// vertex pool. Vertices, Edges and Tris are index-aligned with the input
// arrays and valid after the corresponding Build pass.
type Topology struct {
	NumVertices int
	edges       []mesh.Edge
	tris        []mesh.Tri

	Vertices []VertexTopology
	Edges    []EdgeTopology
	Tris     []TriTopology
}

// NewTopology builds a connectivity engine over the given element arrays.
// The slices are borrowed, not copied: callers must not mutate them while
// the topology is in use. There is no incremental update, construct anew
// or rerun the Build passes after any mesh change.
func NewTopology(numVertices int, edges []mesh.Edge, tris []mesh.Tri) (tp *Topology) {
	tp = &Topology{
		NumVertices: numVertices,
		edges:       edges,
		tris:        tris,
	}
	return
}

func NewFromMesh2D(m *mesh.Mesh2D) *Topology {
	return NewTopology(len(m.Vertices), m.Edges, m.Triangles)
}

func NewFromMesh3D(m *mesh.Mesh3D) *Topology {
	return NewTopology(len(m.Vertices), m.Edges, m.Triangles)
}

// BuildVertices computes vertex incidence: for every vertex, the edges and
// triangles containing it with the local slot it occupies. The pass clears
// previous results and may be rerun at any time.
func (tp *Topology) BuildVertices() *Topology {
	tp.Vertices = make([]VertexTopology, tp.NumVertices)
	tp.buildVerticesRange(0, tp.NumVertices)
	return tp
}

func (tp *Topology) buildVerticesRange(vMin, vMax int) {
	for i, e := range tp.edges {
		for n, v := range e.Verts {
			// Index the full array first: a foreign vertex index faults in
			// every partition
			vt := &tp.Vertices[v]
			if v < vMin || v >= vMax {
				continue
			}
			vt.IncidentEdges = append(vt.IncidentEdges,
				VertexToEdge{EdgeIndex: i, ConnectingVertex: VertexLabel(n)})
		}
	}
	for i, t := range tp.tris {
		for n, v := range t.Verts {
			vt := &tp.Vertices[v]
			if v < vMin || v >= vMax {
				continue
			}
			vt.IncidentTris = append(vt.IncidentTris,
				VertexToTri{TriIndex: i, ConnectingVertex: VertexLabel(n)})
		}
	}
}

// BuildEdges computes edge adjacency. Edge to edge connections are endpoint
// sharing: two edges are adjacent when they share a vertex, whichever local
// slots it occupies. Edge to triangle connections locate the edge among the
// triangle's local edges via EdgePositionInTri. The pass clears previous
// results and may be rerun at any time.
func (tp *Topology) BuildEdges() *Topology {
	tp.Edges = make([]EdgeTopology, len(tp.edges))
	if len(tp.edges) == 0 {
		return tp
	}
	edgeCands, triCands := tp.edgeCandidates()
	tp.buildEdgesRange(edgeCands, triCands, 0, len(tp.edges))
	return tp
}

func (tp *Topology) edgeCandidates() (edgeCands, triCands [][]int) {
	RE := edgeVertexIncidence(tp.NumVertices, tp.edges)
	edgeCands = sharedVertexCandidates(RE, RE)
	if len(tp.tris) != 0 {
		RT := triVertexIncidence(tp.NumVertices, tp.tris)
		triCands = sharedVertexCandidates(RE, RT)
	} else {
		triCands = make([][]int, len(tp.edges))
	}
	return
}

func (tp *Topology) buildEdgesRange(edgeCands, triCands [][]int, kMin, kMax int) {
	for i0 := kMin; i0 < kMax; i0++ {
		var (
			e0 = tp.edges[i0]
			et = &tp.Edges[i0]
		)
		for _, i1 := range edgeCands[i0] {
			if i1 == i0 {
				continue
			}
			// The four endpoint pairings are tested independently, a
			// neighbor touching both endpoints yields one record per
			// shared slot
			e1 := tp.edges[i1]
			if e1.Verts[0] == e0.Verts[0] {
				et.EdgeConnections = append(et.EdgeConnections, EdgeToEdge{
					ConnectingVertex: V0,
					Neighbour:        VertexToEdge{EdgeIndex: i1, ConnectingVertex: V0}})
			}
			if e1.Verts[1] == e0.Verts[0] {
				et.EdgeConnections = append(et.EdgeConnections, EdgeToEdge{
					ConnectingVertex: V0,
					Neighbour:        VertexToEdge{EdgeIndex: i1, ConnectingVertex: V1}})
			}
			if e1.Verts[0] == e0.Verts[1] {
				et.EdgeConnections = append(et.EdgeConnections, EdgeToEdge{
					ConnectingVertex: V1,
					Neighbour:        VertexToEdge{EdgeIndex: i1, ConnectingVertex: V0}})
			}
			if e1.Verts[1] == e0.Verts[1] {
				et.EdgeConnections = append(et.EdgeConnections, EdgeToEdge{
					ConnectingVertex: V1,
					Neighbour:        VertexToEdge{EdgeIndex: i1, ConnectingVertex: V1}})
			}
		}
		for _, j := range triCands[i0] {
			if pos, found := EdgePositionInTri(e0, tp.tris[j]); found {
				et.TriConnections = append(et.TriConnections,
					EdgeToTri{TriIndex: j, ConnectingEdge: pos})
			}
		}
	}
}

// BuildTriangles computes triangle adjacency across shared edges via
// CommonEdge. The pass clears previous results and may be rerun at any
// time.
func (tp *Topology) BuildTriangles() *Topology {
	tp.Tris = make([]TriTopology, len(tp.tris))
	if len(tp.tris) == 0 {
		return tp
	}
	RT := triVertexIncidence(tp.NumVertices, tp.tris)
	tp.buildTrianglesRange(sharedVertexCandidates(RT, RT), 0, len(tp.tris))
	return tp
}

func (tp *Topology) buildTrianglesRange(cands [][]int, kMin, kMax int) {
	for i0 := kMin; i0 < kMax; i0++ {
		t0 := tp.tris[i0]
		for _, i1 := range cands[i0] {
			if i1 == i0 {
				continue
			}
			if label, pos, found := CommonEdge(t0, tp.tris[i1]); found {
				tp.Tris[i0].TriConnections = append(tp.Tris[i0].TriConnections,
					TriToTri{
						ConnectingEdge: label,
						Neighbour:      EdgeToTri{TriIndex: i1, ConnectingEdge: pos}})
			}
		}
	}
}

// BuildAll runs the three passes. They are independent and may also be run
// individually in any order.
func (tp *Topology) BuildAll() *Topology {
	return tp.BuildVertices().BuildEdges().BuildTriangles()
}

// BoundaryEdges returns the indices of edges bordering exactly one
// triangle. BuildEdges must have run.
func (tp *Topology) BoundaryEdges() (boundary []int) {
	for i := range tp.Edges {
		if len(tp.Edges[i].TriConnections) == 1 {
			boundary = append(boundary, i)
		}
	}
	return
}
