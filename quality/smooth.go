package quality

import (
	"fmt"

	"github.com/notargets/gomesh/geometry"
	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/topology"
	"gonum.org/v1/gonum/optimize"
)

// SmoothVertex repositions one interior vertex to maximize the minimum
// shape quality of its incident triangles. topo must carry the vertex and
// edge passes for m. Boundary detection relies on boundary line elements
// being present in the mesh: a vertex incident to an edge bordering fewer
// than two triangles is refused. Moving a vertex changes geometry only,
// the topology stays valid.
func SmoothVertex(m *mesh.Mesh2D, topo *topology.Topology, v int) (p geometry.Pnt2D, err error) {
	if topo.Vertices == nil || topo.Edges == nil {
		err = fmt.Errorf("topology passes not built, run BuildVertices and BuildEdges first")
		return
	}
	if v < 0 || v >= len(m.Vertices) {
		err = fmt.Errorf("vertex %d out of range", v)
		return
	}
	vt := topo.Vertices[v]
	if len(vt.IncidentTris) == 0 {
		err = fmt.Errorf("vertex %d has no incident triangles", v)
		return
	}
	for _, inc := range vt.IncidentEdges {
		if len(topo.Edges[inc.EdgeIndex].TriConnections) < 2 {
			err = fmt.Errorf("vertex %d lies on the boundary", v)
			return
		}
	}

	minQualityAt := func(x, y float64) float64 {
		trial := geometry.NewPnt2D(x, y)
		minQ := 1.
		for _, inc := range vt.IncidentTris {
			var view mesh.TriView2D
			for n, vv := range m.Triangles[inc.TriIndex].Verts {
				if vv == v {
					view.P[n] = &trial
				} else {
					view.P[n] = &m.Vertices[vv]
				}
			}
			if q := TriShapeQuality(view); q < minQ {
				minQ = q
			}
		}
		return minQ
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -minQualityAt(x[0], x[1])
		},
	}
	settings := optimize.Settings{
		MajorIterations:   1000,
		GradientThreshold: 1e-6,
	}
	x0 := []float64{m.Vertices[v].Coords.X[0], m.Vertices[v].Coords.X[1]}
	result, err := optimize.Minimize(problem, x0, &settings, nil)
	if err != nil {
		err = fmt.Errorf("smoothing vertex %d: %w", v, err)
		return
	}
	p = geometry.NewPnt2D(result.X[0], result.X[1])
	m.Vertices[v] = p
	return
}

// Smooth runs SmoothVertex over every eligible vertex for the given number
// of passes and reports how many moves were applied. Refused vertices
// (boundary, no incident triangles) are skipped.
func Smooth(m *mesh.Mesh2D, topo *topology.Topology, passes int) (moved int) {
	for pass := 0; pass < passes; pass++ {
		for v := range m.Vertices {
			if _, err := SmoothVertex(m, topo, v); err == nil {
				moved++
			}
		}
	}
	return
}
