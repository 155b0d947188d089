package geometry

import (
	"fmt"
	"math"
)

type Coord3D struct {
	X [3]float64
}

func NewCoord3D(x, y, z float64) Coord3D {
	return Coord3D{X: [3]float64{x, y, z}}
}

func (c *Coord3D) Scale(a float64) *Coord3D {
	for i := range c.X {
		c.X[i] *= a
	}
	return c
}

func (c *Coord3D) AddScaled(a float64, d Coord3D) *Coord3D {
	for i := range c.X {
		c.X[i] += a * d.X[i]
	}
	return c
}

func LinComb3D(a float64, c0 Coord3D, b float64, c1 Coord3D) (c Coord3D) {
	for i := range c.X {
		c.X[i] = a*c0.X[i] + b*c1.X[i]
	}
	return
}

func (c Coord3D) Equals(d Coord3D) bool {
	return math.Abs(c.X[0]-d.X[0]) < NODETOL &&
		math.Abs(c.X[1]-d.X[1]) < NODETOL &&
		math.Abs(c.X[2]-d.X[2]) < NODETOL
}

func (c Coord3D) SqNorm() float64 {
	return c.X[0]*c.X[0] + c.X[1]*c.X[1] + c.X[2]*c.X[2]
}

func (c Coord3D) Norm() float64 {
	return math.Sqrt(c.SqNorm())
}

type Pnt3D struct {
	Coords Coord3D
}

func NewPnt3D(x, y, z float64) Pnt3D {
	return Pnt3D{Coords: NewCoord3D(x, y, z)}
}

func (p Pnt3D) To(q Pnt3D) (v Vec3D) {
	for i := range v.Coords.X {
		v.Coords.X[i] = q.Coords.X[i] - p.Coords.X[i]
	}
	return
}

func (p Pnt3D) Add(v Vec3D) (q Pnt3D) {
	for i := range q.Coords.X {
		q.Coords.X[i] = p.Coords.X[i] + v.Coords.X[i]
	}
	return
}

func (p Pnt3D) DistanceTo(q Pnt3D) float64 {
	return p.To(q).Norm()
}

func (p Pnt3D) Equals(q Pnt3D) bool {
	return p.Coords.Equals(q.Coords)
}

type Vec3D struct {
	Coords Coord3D
}

func NewVec3D(x, y, z float64) Vec3D {
	return Vec3D{Coords: NewCoord3D(x, y, z)}
}

func (v Vec3D) Add(w Vec3D) (u Vec3D) {
	for i := range u.Coords.X {
		u.Coords.X[i] = v.Coords.X[i] + w.Coords.X[i]
	}
	return
}

func (v Vec3D) Scale(a float64) (u Vec3D) {
	u = v
	u.Coords.Scale(a)
	return
}

func (v Vec3D) Dot(w Vec3D) float64 {
	return v.Coords.X[0]*w.Coords.X[0] +
		v.Coords.X[1]*w.Coords.X[1] +
		v.Coords.X[2]*w.Coords.X[2]
}

func (v Vec3D) Cross(w Vec3D) (u Vec3D) {
	u.Coords.X[0] = v.Coords.X[1]*w.Coords.X[2] - v.Coords.X[2]*w.Coords.X[1]
	u.Coords.X[1] = v.Coords.X[2]*w.Coords.X[0] - v.Coords.X[0]*w.Coords.X[2]
	u.Coords.X[2] = v.Coords.X[0]*w.Coords.X[1] - v.Coords.X[1]*w.Coords.X[0]
	return
}

func (v Vec3D) SqNorm() float64 {
	return v.Coords.SqNorm()
}

func (v Vec3D) Norm() float64 {
	return v.Coords.Norm()
}

func (v Vec3D) Normalize() (d Dir3D, err error) {
	norm := v.Norm()
	if norm < NODETOL {
		err = fmt.Errorf("unable to normalize vector with norm %v", norm)
		return
	}
	for i := range d.Coords.X {
		d.Coords.X[i] = v.Coords.X[i] / norm
	}
	return
}

type Dir3D struct {
	Coords Coord3D
}

func (d Dir3D) Vec() Vec3D {
	return Vec3D{Coords: d.Coords}
}
