// Package quality computes element quality metrics and local mesh
// improvement for 2D meshes.
package quality

import (
	"fmt"

	"github.com/notargets/gomesh/mesh"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func EdgeLengths(m *mesh.Mesh2D) (lengths []float64) {
	lengths = make([]float64, len(m.Edges))
	for i := range m.Edges {
		lengths[i] = m.EdgeView(i).Length()
	}
	return
}

func TriAreas(m *mesh.Mesh2D) (areas []float64) {
	areas = make([]float64, len(m.Triangles))
	for i := range m.Triangles {
		areas[i] = m.TriView(i).Area()
	}
	return
}

// TriShapeQuality is the inverse condition number of the element Jacobian
// mapped from the equilateral reference triangle: 1 for an equilateral
// element, approaching 0 for a degenerate one. Orientation does not enter,
// this is a pure shape metric.
func TriShapeQuality(v mesh.TriView2D) float64 {
	var (
		u01 = v.P[0].To(*v.P[1])
		u02 = v.P[0].To(*v.P[2])
	)
	// S = J * Winv, J = [u01 | u02], Winv the inverse equilateral reference
	const (
		w00, w01 = 1., -0.5773502691896258 // -1/sqrt(3)
		w10, w11 = 0., 1.1547005383792517  // 2/sqrt(3)
	)
	S := mat.NewDense(2, 2, []float64{
		u01.Coords.X[0]*w00 + u02.Coords.X[0]*w10,
		u01.Coords.X[0]*w01 + u02.Coords.X[0]*w11,
		u01.Coords.X[1]*w00 + u02.Coords.X[1]*w10,
		u01.Coords.X[1]*w01 + u02.Coords.X[1]*w11,
	})
	var svd mat.SVD
	if ok := svd.Factorize(S, mat.SVDNone); !ok {
		return 0
	}
	sv := svd.Values(nil)
	if sv[0] == 0 {
		return 0
	}
	return sv[1] / sv[0]
}

func TriShapeQualities(m *mesh.Mesh2D) (qualities []float64) {
	qualities = make([]float64, len(m.Triangles))
	for i := range m.Triangles {
		qualities[i] = TriShapeQuality(m.TriView(i))
	}
	return
}

// Summary holds the distribution statistics of one metric.
type Summary struct {
	Min, Max, Mean, StdDev float64
}

func summarize(xs []float64) (s Summary) {
	if len(xs) == 0 {
		return
	}
	s.Min = floats.Min(xs)
	s.Max = floats.Max(xs)
	s.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return
}

type Report struct {
	NumVertices int
	NumEdges    int
	NumTris     int
	NumQuads    int
	EdgeLength  Summary
	TriArea     Summary
	TriShape    Summary
}

func NewReport(m *mesh.Mesh2D) (r Report) {
	r.NumVertices = len(m.Vertices)
	r.NumEdges = len(m.Edges)
	r.NumTris = len(m.Triangles)
	r.NumQuads = len(m.Quadrangles)
	r.EdgeLength = summarize(EdgeLengths(m))
	r.TriArea = summarize(TriAreas(m))
	r.TriShape = summarize(TriShapeQualities(m))
	return
}

func (r Report) Print() {
	fmt.Printf("Vertices: %d, Edges: %d, Triangles: %d, Quadrangles: %d\n",
		r.NumVertices, r.NumEdges, r.NumTris, r.NumQuads)
	printSummary := func(name string, s Summary) {
		fmt.Printf("%-14s min: %8.5g  max: %8.5g  mean: %8.5g  stddev: %8.5g\n",
			name, s.Min, s.Max, s.Mean, s.StdDev)
	}
	if r.NumEdges != 0 {
		printSummary("Edge length", r.EdgeLength)
	}
	if r.NumTris != 0 {
		printSummary("Tri area", r.TriArea)
		printSummary("Tri shape", r.TriShape)
	}
}
