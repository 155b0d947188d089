package mesh

import "github.com/notargets/gomesh/geometry"

// Views borrow vertex storage from their mesh; they stay valid only while
// the mesh vertices are not reallocated.

type EdgeView2D struct {
	P [2]*geometry.Pnt2D
}

func (v EdgeView2D) Length() float64 {
	return v.P[0].DistanceTo(*v.P[1])
}

type TriView2D struct {
	P [3]*geometry.Pnt2D
}

func (v TriView2D) Area() float64 {
	var (
		u01 = v.P[0].To(*v.P[1])
		u02 = v.P[0].To(*v.P[2])
	)
	cross := u01.Cross(u02)
	if cross < 0 {
		cross = -cross
	}
	return 0.5 * cross
}

func (v TriView2D) Barycenter() (b geometry.Pnt2D) {
	c := v.P[0].Coords
	c.AddScaled(1, v.P[1].Coords).AddScaled(1, v.P[2].Coords).Scale(1. / 3.)
	b.Coords = c
	return
}

type QuadView2D struct {
	P [4]*geometry.Pnt2D
}

// Area splits the quadrangle into triangles (P0,P1,P3) and (P1,P2,P3).
func (v QuadView2D) Area() float64 {
	var (
		t0 = TriView2D{P: [3]*geometry.Pnt2D{v.P[0], v.P[1], v.P[3]}}
		t1 = TriView2D{P: [3]*geometry.Pnt2D{v.P[1], v.P[2], v.P[3]}}
	)
	return t0.Area() + t1.Area()
}

func (v QuadView2D) Barycenter() (b geometry.Pnt2D) {
	c := v.P[0].Coords
	c.AddScaled(1, v.P[1].Coords).
		AddScaled(1, v.P[2].Coords).
		AddScaled(1, v.P[3].Coords).
		Scale(0.25)
	b.Coords = c
	return
}

type EdgeView3D struct {
	P [2]*geometry.Pnt3D
}

func (v EdgeView3D) Length() float64 {
	return v.P[0].DistanceTo(*v.P[1])
}

type TriView3D struct {
	P [3]*geometry.Pnt3D
}

func (v TriView3D) Area() float64 {
	var (
		u01 = v.P[0].To(*v.P[1])
		u02 = v.P[0].To(*v.P[2])
	)
	return 0.5 * u01.Cross(u02).Norm()
}

func (v TriView3D) Barycenter() (b geometry.Pnt3D) {
	c := v.P[0].Coords
	c.AddScaled(1, v.P[1].Coords).AddScaled(1, v.P[2].Coords).Scale(1. / 3.)
	b.Coords = c
	return
}

type TetView3D struct {
	P [4]*geometry.Pnt3D
}

func (v TetView3D) Volume() float64 {
	var (
		u01 = v.P[0].To(*v.P[1])
		u02 = v.P[0].To(*v.P[2])
		u03 = v.P[0].To(*v.P[3])
	)
	det := u01.Dot(u02.Cross(u03))
	if det < 0 {
		det = -det
	}
	return det / 6.
}

func (v TetView3D) Barycenter() (b geometry.Pnt3D) {
	c := v.P[0].Coords
	c.AddScaled(1, v.P[1].Coords).
		AddScaled(1, v.P[2].Coords).
		AddScaled(1, v.P[3].Coords).
		Scale(0.25)
	b.Coords = c
	return
}

type HexaView3D struct {
	P [8]*geometry.Pnt3D
}

func (v HexaView3D) Barycenter() (b geometry.Pnt3D) {
	c := v.P[0].Coords
	for n := 1; n < 8; n++ {
		c.AddScaled(1, v.P[n].Coords)
	}
	c.Scale(0.125)
	b.Coords = c
	return
}
