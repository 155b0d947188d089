package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoords(t *testing.T) {
	{ // Chainable in-place operations
		c := NewCoord2D(1, 2)
		c.Scale(2).AddScaled(3, NewCoord2D(1, 1))
		assert.InDelta(t, 5., c.X[0], NODETOL)
		assert.InDelta(t, 7., c.X[1], NODETOL)
	}
	{ // Linear combination
		c := LinComb2D(0.5, NewCoord2D(2, 0), 0.5, NewCoord2D(0, 2))
		assert.True(t, c.Equals(NewCoord2D(1, 1)))
	}
	{ // Equality is tolerance based
		assert.True(t, NewCoord2D(1, 1).Equals(NewCoord2D(1+0.1*NODETOL, 1)))
		assert.False(t, NewCoord2D(1, 1).Equals(NewCoord2D(1+10*NODETOL, 1)))
	}
}

func TestPointsAndVectors2D(t *testing.T) {
	var (
		p = NewPnt2D(0, 0)
		q = NewPnt2D(3, 4)
	)
	assert.InDelta(t, 5., p.DistanceTo(q), NODETOL)
	v := p.To(q)
	assert.InDelta(t, 25., v.SqNorm(), NODETOL)
	assert.True(t, p.Add(v).Equals(q))

	{ // Dot and scalar cross
		e0 := NewVec2D(1, 0)
		e1 := NewVec2D(0, 1)
		assert.InDelta(t, 0., e0.Dot(e1), NODETOL)
		assert.InDelta(t, 1., e0.Cross(e1), NODETOL)
		assert.InDelta(t, -1., e1.Cross(e0), NODETOL)
	}
	{ // Normalization
		d, err := NewVec2D(2, 0).Normalize()
		assert.NoError(t, err)
		assert.True(t, d.Coords.Equals(NewCoord2D(1, 0)))
		_, err = NewVec2D(0, 0).Normalize()
		assert.Error(t, err)
	}
}

func TestPointsAndVectors3D(t *testing.T) {
	var (
		p = NewPnt3D(0, 0, 0)
		q = NewPnt3D(1, 2, 2)
	)
	assert.InDelta(t, 3., p.DistanceTo(q), NODETOL)
	assert.True(t, p.Add(p.To(q)).Equals(q))

	{ // Cross product of the unit axes
		ex := NewVec3D(1, 0, 0)
		ey := NewVec3D(0, 1, 0)
		ez := ex.Cross(ey)
		assert.InDelta(t, 0., ez.Coords.X[0], NODETOL)
		assert.InDelta(t, 0., ez.Coords.X[1], NODETOL)
		assert.InDelta(t, 1., ez.Coords.X[2], NODETOL)
		assert.InDelta(t, 0., ez.Dot(ex), NODETOL)
	}
	{ // Normalization
		d, err := NewVec3D(0, 0, 4).Normalize()
		assert.NoError(t, err)
		assert.InDelta(t, 1., d.Vec().Norm(), NODETOL)
		_, err = NewVec3D(0, 0, 0).Normalize()
		assert.Error(t, err)
	}
}
