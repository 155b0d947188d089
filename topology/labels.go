// Package topology computes mesh connectivity for unstructured simplicial
// meshes: which edges and triangles touch a vertex, which edges are adjacent
// to an edge, and which triangles border a triangle across a shared edge,
// with the local slot each element occupies in its neighbor.
package topology

import "fmt"

// VertexLabel names a local vertex slot within an element: V0,V1 for an
// edge, V0,V1,V2 for a triangle.
type VertexLabel uint8

const (
	V0 VertexLabel = iota
	V1
	V2
)

func (vl VertexLabel) Index() int {
	return int(vl)
}

func (vl VertexLabel) String() string {
	switch vl {
	case V0:
		return "V0"
	case V1:
		return "V1"
	case V2:
		return "V2"
	default:
		panic("unknown vertex label")
	}
}

// VertexLabelFromIndex converts a raw slot index into a VertexLabel,
// rejecting indices outside the triangle range.
func VertexLabelFromIndex(index int) (vl VertexLabel, err error) {
	if index < 0 || index > 2 {
		err = fmt.Errorf("vertex label index %d out of range [0,2]", index)
		return
	}
	vl = VertexLabel(index)
	return
}

// EdgeLabel names a local edge of a triangle. The local edge convention:
// E0 connects (v0,v1), E1 connects (v1,v2), E2 connects (v2,v0).
type EdgeLabel uint8

const (
	E0 EdgeLabel = iota
	E1
	E2
)

func (el EdgeLabel) Index() int {
	return int(el)
}

func (el EdgeLabel) String() string {
	switch el {
	case E0:
		return "E0"
	case E1:
		return "E1"
	case E2:
		return "E2"
	default:
		panic("unknown edge label")
	}
}

// EdgeLabelFromIndex converts a raw local edge index into an EdgeLabel.
func EdgeLabelFromIndex(index int) (el EdgeLabel, err error) {
	if index < 0 || index > 2 {
		err = fmt.Errorf("edge label index %d out of range [0,2]", index)
		return
	}
	el = EdgeLabel(index)
	return
}
