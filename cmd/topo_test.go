package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestProcessTopoInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
MeshFile: square.su2
ParallelDegree: 2
Smooth:
    Passes: 3
    MinQuality: 0.4
Tags:
    inlet: inflow
    outlet: outflow
`)
	paramsFile := filepath.Join(t.TempDir(), "params.yaml")
	if err = ioutil.WriteFile(paramsFile, fileInput, 0644); err != nil {
		panic(err)
	}
	mt := &ModelTopo{ParamsFile: paramsFile}
	rp := processTopoInput(mt)
	assert.Equal(t, rp.MeshFile, "square.su2")
	assert.Equal(t, rp.ParallelDegree, 2)
	assert.Equal(t, rp.Smooth.Passes, 3)
	assert.Equal(t, rp.Smooth.MinQuality, 0.4)
	assert.Equal(t, rp.Tags["inlet"], "inflow")
	rp.Print()
	// Flags override the parameters file
	mt = &ModelTopo{ParamsFile: paramsFile, MeshFile: "finer.su2", Parallel: 8, Graph: true}
	rp = processTopoInput(mt)
	assert.Equal(t, rp.MeshFile, "finer.su2")
	assert.Equal(t, rp.ParallelDegree, 8)
	assert.Equal(t, rp.Plot, true)
	assert.Equal(t, rp.Tags["outlet"], "outflow")
}
