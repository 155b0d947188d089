package mesh

import "github.com/notargets/gomesh/geometry"

// Mesh2D is a tagged 2D mesh: a shared vertex pool plus element arrays
// holding indices into it. Element arrays are independent, an edge is not
// implicitly part of any triangle.
type Mesh2D struct {
	Vertices    []geometry.Pnt2D
	Edges       []Edge
	Triangles   []Tri
	Quadrangles []Quad
	VertexTags  TagSet
	EdgeTags    TagSet
	TriTags     TagSet
	QuadTags    TagSet
}

func NewMesh2D() (m *Mesh2D) {
	m = &Mesh2D{
		VertexTags: NewTagSet(),
		EdgeTags:   NewTagSet(),
		TriTags:    NewTagSet(),
		QuadTags:   NewTagSet(),
	}
	return
}

func (m *Mesh2D) AddVertex(x, y float64) *Mesh2D {
	m.Vertices = append(m.Vertices, geometry.NewPnt2D(x, y))
	return m
}

func (m *Mesh2D) AddTaggedVertex(x, y float64, tag string) *Mesh2D {
	m.VertexTags.Register(tag, len(m.Vertices))
	return m.AddVertex(x, y)
}

func (m *Mesh2D) AddEdge(v0, v1 int) *Mesh2D {
	m.Edges = append(m.Edges, NewEdge([2]int{v0, v1}))
	return m
}

func (m *Mesh2D) AddTaggedEdge(v0, v1 int, tag string) *Mesh2D {
	m.EdgeTags.Register(tag, len(m.Edges))
	return m.AddEdge(v0, v1)
}

func (m *Mesh2D) AddTri(v0, v1, v2 int) *Mesh2D {
	m.Triangles = append(m.Triangles, NewTri([3]int{v0, v1, v2}))
	return m
}

func (m *Mesh2D) AddTaggedTri(v0, v1, v2 int, tag string) *Mesh2D {
	m.TriTags.Register(tag, len(m.Triangles))
	return m.AddTri(v0, v1, v2)
}

func (m *Mesh2D) AddQuad(v0, v1, v2, v3 int) *Mesh2D {
	m.Quadrangles = append(m.Quadrangles, NewQuad([4]int{v0, v1, v2, v3}))
	return m
}

func (m *Mesh2D) AddTaggedQuad(v0, v1, v2, v3 int, tag string) *Mesh2D {
	m.QuadTags.Register(tag, len(m.Quadrangles))
	return m.AddQuad(v0, v1, v2, v3)
}

func (m *Mesh2D) EdgeView(i int) (v EdgeView2D) {
	e := &m.Edges[i]
	v.P[0] = &m.Vertices[e.Verts[0]]
	v.P[1] = &m.Vertices[e.Verts[1]]
	return
}

func (m *Mesh2D) TriView(i int) (v TriView2D) {
	tri := &m.Triangles[i]
	for n := 0; n < 3; n++ {
		v.P[n] = &m.Vertices[tri.Verts[n]]
	}
	return
}

func (m *Mesh2D) QuadView(i int) (v QuadView2D) {
	q := &m.Quadrangles[i]
	for n := 0; n < 4; n++ {
		v.P[n] = &m.Vertices[q.Verts[n]]
	}
	return
}

// Mesh3D is the 3D analogue of Mesh2D, adding volume elements.
type Mesh3D struct {
	Vertices    []geometry.Pnt3D
	Edges       []Edge
	Triangles   []Tri
	Quadrangles []Quad
	Tetrahedra  []Tet
	Hexahedra   []Hexa
	VertexTags  TagSet
	EdgeTags    TagSet
	TriTags     TagSet
	QuadTags    TagSet
	TetTags     TagSet
	HexaTags    TagSet
}

func NewMesh3D() (m *Mesh3D) {
	m = &Mesh3D{
		VertexTags: NewTagSet(),
		EdgeTags:   NewTagSet(),
		TriTags:    NewTagSet(),
		QuadTags:   NewTagSet(),
		TetTags:    NewTagSet(),
		HexaTags:   NewTagSet(),
	}
	return
}

func (m *Mesh3D) AddVertex(x, y, z float64) *Mesh3D {
	m.Vertices = append(m.Vertices, geometry.NewPnt3D(x, y, z))
	return m
}

func (m *Mesh3D) AddTaggedVertex(x, y, z float64, tag string) *Mesh3D {
	m.VertexTags.Register(tag, len(m.Vertices))
	return m.AddVertex(x, y, z)
}

func (m *Mesh3D) AddEdge(v0, v1 int) *Mesh3D {
	m.Edges = append(m.Edges, NewEdge([2]int{v0, v1}))
	return m
}

func (m *Mesh3D) AddTaggedEdge(v0, v1 int, tag string) *Mesh3D {
	m.EdgeTags.Register(tag, len(m.Edges))
	return m.AddEdge(v0, v1)
}

func (m *Mesh3D) AddTri(v0, v1, v2 int) *Mesh3D {
	m.Triangles = append(m.Triangles, NewTri([3]int{v0, v1, v2}))
	return m
}

func (m *Mesh3D) AddTaggedTri(v0, v1, v2 int, tag string) *Mesh3D {
	m.TriTags.Register(tag, len(m.Triangles))
	return m.AddTri(v0, v1, v2)
}

func (m *Mesh3D) AddQuad(v0, v1, v2, v3 int) *Mesh3D {
	m.Quadrangles = append(m.Quadrangles, NewQuad([4]int{v0, v1, v2, v3}))
	return m
}

func (m *Mesh3D) AddTaggedQuad(v0, v1, v2, v3 int, tag string) *Mesh3D {
	m.QuadTags.Register(tag, len(m.Quadrangles))
	return m.AddQuad(v0, v1, v2, v3)
}

func (m *Mesh3D) AddTet(v0, v1, v2, v3 int) *Mesh3D {
	m.Tetrahedra = append(m.Tetrahedra, NewTet([4]int{v0, v1, v2, v3}))
	return m
}

func (m *Mesh3D) AddTaggedTet(v0, v1, v2, v3 int, tag string) *Mesh3D {
	m.TetTags.Register(tag, len(m.Tetrahedra))
	return m.AddTet(v0, v1, v2, v3)
}

func (m *Mesh3D) AddHexa(verts [8]int) *Mesh3D {
	m.Hexahedra = append(m.Hexahedra, NewHexa(verts))
	return m
}

func (m *Mesh3D) AddTaggedHexa(verts [8]int, tag string) *Mesh3D {
	m.HexaTags.Register(tag, len(m.Hexahedra))
	return m.AddHexa(verts)
}

func (m *Mesh3D) EdgeView(i int) (v EdgeView3D) {
	e := &m.Edges[i]
	v.P[0] = &m.Vertices[e.Verts[0]]
	v.P[1] = &m.Vertices[e.Verts[1]]
	return
}

func (m *Mesh3D) TriView(i int) (v TriView3D) {
	tri := &m.Triangles[i]
	for n := 0; n < 3; n++ {
		v.P[n] = &m.Vertices[tri.Verts[n]]
	}
	return
}

func (m *Mesh3D) TetView(i int) (v TetView3D) {
	tet := &m.Tetrahedra[i]
	for n := 0; n < 4; n++ {
		v.P[n] = &m.Vertices[tet.Verts[n]]
	}
	return
}

func (m *Mesh3D) HexaView(i int) (v HexaView3D) {
	h := &m.Hexahedra[i]
	for n := 0; n < 8; n++ {
		v.P[n] = &m.Vertices[h.Verts[n]]
	}
	return
}
