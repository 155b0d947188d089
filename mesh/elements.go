package mesh

// Edge is a mesh element connecting two vertices of the shared vertex pool.
type Edge struct {
	Verts [2]int
}

func NewEdge(verts [2]int) Edge {
	return Edge{Verts: verts}
}

// Tri is a triangle element. Local numbering order:
//
//	P2
//	  *
//	  |`\
//	  |  `\
//	  |    `\
//	  |      `\
//	  *--------`*
//	P0           P1
type Tri struct {
	Verts [3]int
}

func NewTri(verts [3]int) Tri {
	return Tri{Verts: verts}
}

// Quad is a quadrangle element. Local numbering order:
//
//	P3            P2
//	  *----------*
//	  |          |
//	  |          |
//	  |          |
//	  *----------*
//	P0            P1
type Quad struct {
	Verts [4]int
}

func NewQuad(verts [4]int) Quad {
	return Quad{Verts: verts}
}

// Tet is a tetrahedron element.
type Tet struct {
	Verts [4]int
}

func NewTet(verts [4]int) Tet {
	return Tet{Verts: verts}
}

// Hexa is a hexahedron element.
type Hexa struct {
	Verts [8]int
}

func NewHexa(verts [8]int) Hexa {
	return Hexa{Verts: verts}
}
