package readfiles

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gomesh/mesh"
)

// PlotMesh draws the triangles of msh colored by the per-triangle shape
// qualities, which must carry one value in [0,1] per triangle.
func PlotMesh(msh *mesh.Mesh2D, qualities []float64, plotPoints bool) (chart *chart2d.Chart2D) {
	var (
		points  []graphics2D.Point
		trimesh graphics2D.TriMesh
		K       = len(msh.Triangles)
	)
	points = make([]graphics2D.Point, len(msh.Vertices))
	for i, p := range msh.Vertices {
		points[i].X[0] = float32(p.Coords.X[0])
		points[i].X[1] = float32(p.Coords.X[1])
	}
	trimesh.Triangles = make([]graphics2D.Triangle, K)
	colorMap := utils2.NewColorMap(0, 1, 1)
	trimesh.Attributes = make([][]float32, K) // One quality attribute per corner
	for k, tri := range msh.Triangles {
		trimesh.Attributes[k] = make([]float32, 3)
		for i := 0; i < 3; i++ {
			trimesh.Triangles[k].Nodes[i] = int32(tri.Verts[i])
			trimesh.Attributes[k][i] = float32(qualities[k])
		}
	}
	trimesh.Geometry = points
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(colorMap)
	go chart.Plot()
	white := color.RGBA{
		R: 255,
		G: 255,
		B: 255,
		A: 0,
	}
	black := color.RGBA{
		R: 0,
		G: 0,
		B: 0,
		A: 0,
	}
	if err := chart.AddTriMesh("Mesh", trimesh,
		chart2d.CrossGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	var ptsGlyph chart2d.GlyphType
	ptsGlyph = chart2d.NoGlyph
	if plotPoints {
		ptsGlyph = chart2d.CircleGlyph
	}
	x := make([]float64, len(msh.Vertices))
	y := make([]float64, len(msh.Vertices))
	for i, p := range msh.Vertices {
		x[i], y[i] = p.Coords.X[0], p.Coords.X[1]
	}
	if err := chart.AddSeries("Vertices", x, y,
		ptsGlyph, chart2d.NoLine, black); err != nil {
		panic(err)
	}

	return
}
