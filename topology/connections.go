package topology

import (
	"fmt"

	"github.com/notargets/gomesh/mesh"
)

// EdgePosition locates an edge within a triangle: the local edge label plus
// whether the edge runs against the triangle's local orientation.
type EdgePosition struct {
	Label      EdgeLabel
	IsReversed bool
}

func NewEdgePosition(label int, isReversed bool) EdgePosition {
	if label < 0 || label > 2 {
		panic(fmt.Errorf("invalid edge label %d in triangle", label))
	}
	return EdgePosition{Label: EdgeLabel(label), IsReversed: isReversed}
}

// VertexToEdge connects a vertex to an edge: the vertex sits at local slot
// ConnectingVertex of edge EdgeIndex.
type VertexToEdge struct {
	EdgeIndex        int
	ConnectingVertex VertexLabel
}

func NewVertexToEdge(edgeIndex, position int) VertexToEdge {
	if position < 0 || position > 1 {
		panic(fmt.Errorf("invalid vertex position %d in edge", position))
	}
	return VertexToEdge{EdgeIndex: edgeIndex, ConnectingVertex: VertexLabel(position)}
}

// VertexToTri connects a vertex to a triangle: the vertex sits at local slot
// ConnectingVertex of triangle TriIndex.
type VertexToTri struct {
	TriIndex         int
	ConnectingVertex VertexLabel
}

func NewVertexToTri(triIndex, position int) VertexToTri {
	if position < 0 || position > 2 {
		panic(fmt.Errorf("invalid vertex position %d in triangle", position))
	}
	return VertexToTri{TriIndex: triIndex, ConnectingVertex: VertexLabel(position)}
}

// EdgeToEdge connects two edges sharing an endpoint: my endpoint
// ConnectingVertex coincides with endpoint Neighbour.ConnectingVertex of
// edge Neighbour.EdgeIndex.
type EdgeToEdge struct {
	ConnectingVertex VertexLabel
	Neighbour        VertexToEdge
}

func NewEdgeToEdge(position int, neighbour VertexToEdge) EdgeToEdge {
	if position < 0 || position > 1 {
		panic(fmt.Errorf("invalid vertex position %d in edge", position))
	}
	return EdgeToEdge{ConnectingVertex: VertexLabel(position), Neighbour: neighbour}
}

// EdgeToTri connects an edge to a triangle it is a local edge of: I am edge
// ConnectingEdge.Label of triangle TriIndex, reversed when
// ConnectingEdge.IsReversed.
type EdgeToTri struct {
	TriIndex       int
	ConnectingEdge EdgePosition
}

func NewEdgeToTri(triIndex, label int, isReversed bool) EdgeToTri {
	return EdgeToTri{TriIndex: triIndex, ConnectingEdge: NewEdgePosition(label, isReversed)}
}

// TriToTri connects two triangles across a shared edge: my local edge
// ConnectingEdge is edge Neighbour.ConnectingEdge.Label of triangle
// Neighbour.TriIndex.
type TriToTri struct {
	ConnectingEdge EdgeLabel
	Neighbour      EdgeToTri
}

func NewTriToTri(label int, neighbour EdgeToTri) TriToTri {
	if label < 0 || label > 2 {
		panic(fmt.Errorf("invalid edge label %d in triangle", label))
	}
	return TriToTri{ConnectingEdge: EdgeLabel(label), Neighbour: neighbour}
}

// EdgePositionInTri determines whether edge e occurs as a local edge of
// triangle t. The triangle's canonical edges (v0,v1), (v1,v2), (v2,v0) are
// compared in label order, forward before reversed, and the first match
// wins. Sharing a single vertex is not a match. Pure and allocation free.
func EdgePositionInTri(e mesh.Edge, t mesh.Tri) (pos EdgePosition, found bool) {
	switch {
	case e.Verts[0] == t.Verts[0] && e.Verts[1] == t.Verts[1]:
		pos, found = EdgePosition{Label: E0}, true
	case e.Verts[1] == t.Verts[0] && e.Verts[0] == t.Verts[1]:
		pos, found = EdgePosition{Label: E0, IsReversed: true}, true
	case e.Verts[0] == t.Verts[1] && e.Verts[1] == t.Verts[2]:
		pos, found = EdgePosition{Label: E1}, true
	case e.Verts[1] == t.Verts[1] && e.Verts[0] == t.Verts[2]:
		pos, found = EdgePosition{Label: E1, IsReversed: true}, true
	case e.Verts[0] == t.Verts[2] && e.Verts[1] == t.Verts[0]:
		pos, found = EdgePosition{Label: E2}, true
	case e.Verts[1] == t.Verts[2] && e.Verts[0] == t.Verts[0]:
		pos, found = EdgePosition{Label: E2, IsReversed: true}, true
	}
	return
}

// CommonEdge finds the edge shared by triangles t0 and t1: t0's canonical
// edges are run through EdgePositionInTri against t1 in label order and the
// first success wins. label locates the shared edge in t0, pos locates it
// in t1.
func CommonEdge(t0, t1 mesh.Tri) (label EdgeLabel, pos EdgePosition, found bool) {
	if pos, found = EdgePositionInTri(mesh.Edge{Verts: [2]int{t0.Verts[0], t0.Verts[1]}}, t1); found {
		label = E0
		return
	}
	if pos, found = EdgePositionInTri(mesh.Edge{Verts: [2]int{t0.Verts[1], t0.Verts[2]}}, t1); found {
		label = E1
		return
	}
	if pos, found = EdgePositionInTri(mesh.Edge{Verts: [2]int{t0.Verts[2], t0.Verts[0]}}, t1); found {
		label = E2
		return
	}
	return
}
