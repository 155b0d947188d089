package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/gomesh/geometry"
	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/topology"
	"github.com/stretchr/testify/assert"
)

func TestReadGambit2D(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "square.neu")
	assert.NoError(t, os.WriteFile(fname, gambitFile, 0644))

	msh := ReadGambit2D(fname, false)
	{ // Test vertices and elements
		assert.Equal(t, 4, len(msh.Vertices))
		assert.True(t, msh.Vertices[2].Equals(geometry.NewPnt2D(1, 1)))
		assert.Equal(t, []mesh.Tri{
			{Verts: [3]int{0, 1, 2}},
			{Verts: [3]int{2, 3, 0}},
		}, msh.Triangles)
	}
	{ // Test the material group landing on the element tags
		indexes, ok := msh.TriTags.RegisteredIndexes("aluminum")
		assert.True(t, ok)
		assert.Equal(t, []int{0, 1}, indexes)
	}
	{ // Test the boundary condition set landing on the edge tags
		assert.Equal(t, []mesh.Edge{
			{Verts: [2]int{0, 1}},
			{Verts: [2]int{1, 2}},
			{Verts: [2]int{2, 3}},
			{Verts: [2]int{3, 0}},
		}, msh.Edges)
		indexes, ok := msh.EdgeTags.RegisteredIndexes("wall")
		assert.True(t, ok)
		assert.Equal(t, []int{0, 1, 2, 3}, indexes)
	}
	{ // Test a topology build over the read mesh
		tp := topology.NewFromMesh2D(msh).BuildAll()
		assert.Equal(t, []int{0, 1, 2, 3}, tp.BoundaryEdges())
	}
	{ // Extension dispatch picks the right reader
		fromDispatch := ReadMeshFile(fname, false)
		assert.Equal(t, msh.Vertices, fromDispatch.Vertices)
		assert.Equal(t, msh.Triangles, fromDispatch.Triangles)
		assert.Panics(t, func() { ReadMeshFile("mesh.vtk", false) })
	}
}

var (
	gambitFile = []byte(`        CONTROL INFO 2.0.0
** GAMBIT NEUTRAL FILE
square
PROGRAM:                Gambit     VERSION:  2.0.0
22 Aug 2026    12:00:00
     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         4         2         1         1         2         2
ENDOFSECTION
   NODAL COORDINATES 2.0.0
         1   0.00000000000e+00   0.00000000000e+00
         2   1.00000000000e+00   0.00000000000e+00
         3   1.00000000000e+00   1.00000000000e+00
         4   0.00000000000e+00   1.00000000000e+00
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
     1  3  3        1       2       3
     2  3  3        3       4       1
ENDOFSECTION
       ELEMENT GROUP 2.0.0
GROUP:          1 ELEMENTS:          2 MATERIAL:      1.000 NFLAGS:          0
aluminum
       0
         1         2
ENDOFSECTION
 BOUNDARY CONDITIONS 2.0.0
                            wall         6         4         0         6
         1         3         1
         1         3         2
         2         3         1
         2         3         2
ENDOFSECTION
`)
)
