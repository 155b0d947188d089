package readfiles

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/gomesh/geometry"
	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/topology"
	"github.com/stretchr/testify/assert"
)

func TestReadSU2(t *testing.T) {
	{ // Test reading the file structure
		reader := bufio.NewReader(bytes.NewReader(inputFile))

		dim := readNumber(reader)
		assert.Equal(t, 2, dim)
		nelem := readNumber(reader)
		assert.Equal(t, 2, nelem)
		skipLines(nelem, reader)
		npts := readNumber(reader)
		assert.Equal(t, 4, npts)
		skipLines(npts, reader)
		nmark := readNumber(reader)
		assert.Equal(t, 4, nmark)
		labels := []string{"bottom", "right", "top", "left"}
		for n := 0; n < nmark; n++ {
			mark := readLabel(reader)
			assert.Equal(t, labels[n], mark)
			nm := readNumber(reader)
			assert.Equal(t, 1, nm)
			skipLines(nm, reader)
		}
	}
	{ // Test read elements, vertices and markers
		reader := bufio.NewReader(bytes.NewReader(inputFile))
		_ = readNumber(reader)
		msh := mesh.NewMesh2D()
		readElements(reader, msh)
		assert.Equal(t, []mesh.Tri{
			{Verts: [3]int{0, 1, 2}},
			{Verts: [3]int{2, 3, 0}},
		}, msh.Triangles)
		readVertices(reader, msh)
		assert.Equal(t, 4, len(msh.Vertices))
		assert.True(t, msh.Vertices[2].Equals(geometry.NewPnt2D(1, 1)))
		readMarkers(reader, msh)
		assert.Equal(t, []mesh.Edge{
			{Verts: [2]int{0, 1}},
			{Verts: [2]int{1, 2}},
			{Verts: [2]int{2, 3}},
			{Verts: [2]int{3, 0}},
		}, msh.Edges)
		assert.Equal(t, []string{"bottom", "left", "right", "top"}, msh.EdgeTags.Names())
		indexes, ok := msh.EdgeTags.RegisteredIndexes("left")
		assert.True(t, ok)
		assert.Equal(t, []int{3}, indexes)
	}
	{ // Test the full read and a topology build over it
		fname := filepath.Join(t.TempDir(), "square.su2")
		assert.NoError(t, os.WriteFile(fname, inputFile, 0644))

		msh := ReadSU2(fname, false)
		assert.Equal(t, 4, len(msh.Vertices))
		assert.Equal(t, 4, len(msh.Edges))
		assert.Equal(t, 2, len(msh.Triangles))

		tp := topology.NewFromMesh2D(msh).BuildAll()
		assert.Equal(t, []int{0, 1, 2, 3}, tp.BoundaryEdges())
		assert.Equal(t, 1, len(tp.Tris[0].TriConnections))

		fromData := ReadSU2Data(inputFile)
		assert.Equal(t, msh.Vertices, fromData.Vertices)
		assert.Equal(t, msh.Triangles, fromData.Triangles)
		assert.Equal(t, msh.EdgeTags, fromData.EdgeTags)
	}
}

var (
	inputFile = []byte(`% Unit square with two triangles, written by hand
% Comments can appear outside of data areas
NDIME= 2
NELEM= 2
5 0 1 2 0
5 2 3 0 1
NPOIN= 4
0 0 0
1 0 1
1 1 2
0 1 3
NMARK= 4
MARKER_TAG= bottom
MARKER_ELEMS= 1
3 0 1
MARKER_TAG= right
MARKER_ELEMS= 1
3 1 2
MARKER_TAG= top
MARKER_ELEMS= 1
3 2 3
MARKER_TAG= left
MARKER_ELEMS= 1
3 3 0
`)
)
