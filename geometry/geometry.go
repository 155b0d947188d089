// Package geometry provides the point, vector and direction primitives the
// mesh containers are built on.
package geometry

import (
	"fmt"
	"math"
)

// NODETOL is the geometric tolerance used for coordinate comparisons.
const NODETOL = 1.e-12

type Coord2D struct {
	X [2]float64
}

func NewCoord2D(x, y float64) Coord2D {
	return Coord2D{X: [2]float64{x, y}}
}

// Scale multiplies the coordinates in place.
func (c *Coord2D) Scale(a float64) *Coord2D {
	c.X[0] *= a
	c.X[1] *= a
	return c
}

// AddScaled adds a*d to the coordinates in place.
func (c *Coord2D) AddScaled(a float64, d Coord2D) *Coord2D {
	c.X[0] += a * d.X[0]
	c.X[1] += a * d.X[1]
	return c
}

func LinComb2D(a float64, c0 Coord2D, b float64, c1 Coord2D) (c Coord2D) {
	c.X[0] = a*c0.X[0] + b*c1.X[0]
	c.X[1] = a*c0.X[1] + b*c1.X[1]
	return
}

func (c Coord2D) Equals(d Coord2D) bool {
	return math.Abs(c.X[0]-d.X[0]) < NODETOL &&
		math.Abs(c.X[1]-d.X[1]) < NODETOL
}

func (c Coord2D) SqNorm() float64 {
	return c.X[0]*c.X[0] + c.X[1]*c.X[1]
}

func (c Coord2D) Norm() float64 {
	return math.Sqrt(c.SqNorm())
}

type Pnt2D struct {
	Coords Coord2D
}

func NewPnt2D(x, y float64) Pnt2D {
	return Pnt2D{Coords: NewCoord2D(x, y)}
}

// To returns the vector running from p to q.
func (p Pnt2D) To(q Pnt2D) (v Vec2D) {
	v.Coords.X[0] = q.Coords.X[0] - p.Coords.X[0]
	v.Coords.X[1] = q.Coords.X[1] - p.Coords.X[1]
	return
}

func (p Pnt2D) Add(v Vec2D) (q Pnt2D) {
	q.Coords.X[0] = p.Coords.X[0] + v.Coords.X[0]
	q.Coords.X[1] = p.Coords.X[1] + v.Coords.X[1]
	return
}

func (p Pnt2D) DistanceTo(q Pnt2D) float64 {
	return p.To(q).Norm()
}

func (p Pnt2D) Equals(q Pnt2D) bool {
	return p.Coords.Equals(q.Coords)
}

type Vec2D struct {
	Coords Coord2D
}

func NewVec2D(x, y float64) Vec2D {
	return Vec2D{Coords: NewCoord2D(x, y)}
}

func (v Vec2D) Add(w Vec2D) (u Vec2D) {
	u.Coords.X[0] = v.Coords.X[0] + w.Coords.X[0]
	u.Coords.X[1] = v.Coords.X[1] + w.Coords.X[1]
	return
}

func (v Vec2D) Scale(a float64) (u Vec2D) {
	u = v
	u.Coords.Scale(a)
	return
}

func (v Vec2D) Dot(w Vec2D) float64 {
	return v.Coords.X[0]*w.Coords.X[0] + v.Coords.X[1]*w.Coords.X[1]
}

// Cross returns the scalar z component of the cross product.
func (v Vec2D) Cross(w Vec2D) float64 {
	return v.Coords.X[0]*w.Coords.X[1] - v.Coords.X[1]*w.Coords.X[0]
}

func (v Vec2D) SqNorm() float64 {
	return v.Coords.SqNorm()
}

func (v Vec2D) Norm() float64 {
	return v.Coords.Norm()
}

// Normalize returns the unit direction of v, failing if v is near zero.
func (v Vec2D) Normalize() (d Dir2D, err error) {
	norm := v.Norm()
	if norm < NODETOL {
		err = fmt.Errorf("unable to normalize vector with norm %v", norm)
		return
	}
	d.Coords.X[0] = v.Coords.X[0] / norm
	d.Coords.X[1] = v.Coords.X[1] / norm
	return
}

// Dir2D is a unit vector. Construct via Vec2D.Normalize.
type Dir2D struct {
	Coords Coord2D
}

func (d Dir2D) Vec() Vec2D {
	return Vec2D{Coords: d.Coords}
}
