package topology

import (
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gomesh/mesh"
)

// Candidate index for the adjacency passes. Element-to-vertex incidence
// matrices are multiplied into element-to-element shared-vertex matrices,
// and each row's nonzero columns become the candidate partners of one
// target element. Candidate rows ascend and carry no duplicates, so a
// match loop over a row appends records in the same order a full pairwise
// scan would.

func edgeVertexIncidence(numVertices int, edges []mesh.Edge) (R *sparse.CSR) {
	SpEToV := sparse.NewDOK(len(edges), numVertices)
	for i, e := range edges {
		SpEToV.Set(i, e.Verts[0], 1)
		SpEToV.Set(i, e.Verts[1], 1)
	}
	R = SpEToV.ToCSR()
	return
}

func triVertexIncidence(numVertices int, tris []mesh.Tri) (R *sparse.CSR) {
	SpTToV := sparse.NewDOK(len(tris), numVertices)
	for i, t := range tris {
		for n := 0; n < 3; n++ {
			SpTToV.Set(i, t.Verts[n], 1)
		}
	}
	R = SpTToV.ToCSR()
	return
}

func sharedVertexCandidates(RA, RB *sparse.CSR) (cands [][]int) {
	var (
		nA, _ = RA.Dims()
		nB, _ = RB.Dims()
	)
	SpAToB := sparse.NewCSR(nA, nB, nil, nil, nil)
	SpAToB.Mul(RA, RB.T())
	cands = make([][]int, nA)
	SpAToB.DoNonZero(func(i, j int, v float64) {
		cands[i] = append(cands[i], j)
	})
	for i := range cands {
		sort.Ints(cands[i])
		row := cands[i][:0]
		last := -1
		for _, j := range cands[i] {
			if j != last {
				row = append(row, j)
				last = j
			}
		}
		cands[i] = row
	}
	return
}
