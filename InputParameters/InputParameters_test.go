package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	data := []byte(`
Title: Unit Square
MeshFile: square.su2
ParallelDegree: 4
Plot: true
PlotPoints: false
Smooth:
    Passes: 3
    MinQuality: 0.4
Tags:
    bottom: wall
    top: wall
    left: periodic
    right: periodic
`)
	var rp RunParameters
	assert.NoError(t, rp.Parse(data))
	assert.Equal(t, "Unit Square", rp.Title)
	assert.Equal(t, "square.su2", rp.MeshFile)
	assert.Equal(t, 4, rp.ParallelDegree)
	assert.True(t, rp.Plot)
	assert.False(t, rp.PlotPoints)
	assert.Equal(t, 3, rp.Smooth.Passes)
	assert.Equal(t, 0.4, rp.Smooth.MinQuality)
	assert.Equal(t, "wall", rp.Tags["bottom"])
	assert.Equal(t, "periodic", rp.Tags["left"])
	rp.Print()

	assert.Error(t, rp.Parse([]byte("Title: [unclosed")))
}
