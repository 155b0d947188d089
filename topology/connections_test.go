package topology

import (
	"testing"

	"github.com/notargets/gomesh/mesh"
	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, 0, V0.Index())
	assert.Equal(t, 2, V2.Index())
	assert.Equal(t, "V1", V1.String())
	assert.Equal(t, 1, E1.Index())
	assert.Equal(t, "E2", E2.String())
	assert.Panics(t, func() { _ = VertexLabel(7).String() })
	assert.Panics(t, func() { _ = EdgeLabel(3).String() })

	vl, err := VertexLabelFromIndex(2)
	assert.NoError(t, err)
	assert.Equal(t, V2, vl)
	_, err = VertexLabelFromIndex(3)
	assert.Error(t, err)
	_, err = VertexLabelFromIndex(-1)
	assert.Error(t, err)

	el, err := EdgeLabelFromIndex(0)
	assert.NoError(t, err)
	assert.Equal(t, E0, el)
	_, err = EdgeLabelFromIndex(3)
	assert.Error(t, err)
}

func TestConnectionConstructors(t *testing.T) {
	assert.Equal(t, VertexToEdge{12, V1}, NewVertexToEdge(12, 1))
	assert.Equal(t, VertexToTri{4, V2}, NewVertexToTri(4, 2))
	assert.Equal(t, EdgePosition{E1, true}, NewEdgePosition(1, true))
	assert.Equal(t,
		EdgeToEdge{V0, VertexToEdge{3, V1}},
		NewEdgeToEdge(0, NewVertexToEdge(3, 1)))
	assert.Equal(t, EdgeToTri{7, EdgePosition{E2, false}}, NewEdgeToTri(7, 2, false))
	assert.Equal(t,
		TriToTri{E0, EdgeToTri{9, EdgePosition{E1, true}}},
		NewTriToTri(0, NewEdgeToTri(9, 1, true)))

	// Local positions past the element arity are programmer errors
	assert.Panics(t, func() { NewVertexToEdge(0, 2) })
	assert.Panics(t, func() { NewVertexToTri(0, 3) })
	assert.Panics(t, func() { NewVertexToTri(0, -1) })
	assert.Panics(t, func() { NewEdgePosition(3, false) })
	assert.Panics(t, func() { NewEdgeToEdge(2, NewVertexToEdge(0, 0)) })
	assert.Panics(t, func() { NewEdgeToTri(0, 5, true) })
	assert.Panics(t, func() { NewTriToTri(-1, NewEdgeToTri(0, 0, false)) })
}

func TestEdgePositionInTri(t *testing.T) {
	tri := mesh.NewTri([3]int{0, 1, 2})

	pos, found := EdgePositionInTri(mesh.NewEdge([2]int{1, 0}), tri)
	assert.True(t, found)
	assert.Equal(t, EdgePosition{E0, true}, pos)

	pos, found = EdgePositionInTri(mesh.NewEdge([2]int{0, 1}), tri)
	assert.True(t, found)
	assert.Equal(t, EdgePosition{E0, false}, pos)

	pos, found = EdgePositionInTri(mesh.NewEdge([2]int{0, 2}), tri)
	assert.True(t, found)
	assert.Equal(t, EdgePosition{E2, true}, pos)

	pos, found = EdgePositionInTri(mesh.NewEdge([2]int{1, 2}), tri)
	assert.True(t, found)
	assert.Equal(t, EdgePosition{E1, false}, pos)

	pos, found = EdgePositionInTri(mesh.NewEdge([2]int{2, 0}), tri)
	assert.True(t, found)
	assert.Equal(t, EdgePosition{E2, false}, pos)

	// Sharing a single vertex is not a match
	_, found = EdgePositionInTri(mesh.NewEdge([2]int{0, 5}), tri)
	assert.False(t, found)
	_, found = EdgePositionInTri(mesh.NewEdge([2]int{7, 8}), tri)
	assert.False(t, found)
}

func TestCommonEdge(t *testing.T) {
	{
		label, pos, found := CommonEdge(
			mesh.NewTri([3]int{0, 1, 2}), mesh.NewTri([3]int{3, 2, 1}))
		assert.True(t, found)
		assert.Equal(t, E1, label)
		assert.Equal(t, EdgePosition{E1, true}, pos)
	}
	{ // Same winding on both sides of the shared edge reverses it
		label, pos, found := CommonEdge(
			mesh.NewTri([3]int{0, 1, 3}), mesh.NewTri([3]int{1, 2, 3}))
		assert.True(t, found)
		assert.Equal(t, E1, label)
		assert.Equal(t, EdgePosition{E2, true}, pos)
	}
	{ // Sharing one vertex only
		_, _, found := CommonEdge(
			mesh.NewTri([3]int{0, 1, 2}), mesh.NewTri([3]int{2, 3, 4}))
		assert.False(t, found)
	}
	{ // Disjoint
		_, _, found := CommonEdge(
			mesh.NewTri([3]int{0, 1, 2}), mesh.NewTri([3]int{3, 4, 5}))
		assert.False(t, found)
	}
}
