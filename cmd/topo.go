/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/notargets/gomesh/InputParameters"
	"github.com/notargets/gomesh/quality"
	"github.com/notargets/gomesh/readfiles"
	"github.com/notargets/gomesh/topology"
	"github.com/notargets/gomesh/utils"

	"github.com/spf13/cobra"
)

type ModelTopo struct {
	MeshFile   string
	ParamsFile string
	Parallel   int
	Graph      bool
	PlotPoints bool
	Profile    bool
	Verbose    bool
}

// TopoCmd represents the topo command
var TopoCmd = &cobra.Command{
	Use:   "topo",
	Short: "Builds mesh connectivity, able to read grid files and report element quality",
	Long:  `Builds mesh connectivity, able to read grid files and report element quality`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("topo called")
		mt := &ModelTopo{}
		if mt.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if mt.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		mt.Parallel, _ = cmd.Flags().GetInt("parallel")
		mt.Graph, _ = cmd.Flags().GetBool("graph")
		mt.PlotPoints, _ = cmd.Flags().GetBool("plotPoints")
		mt.Profile, _ = cmd.Flags().GetBool("profile")
		mt.Verbose, _ = cmd.Flags().GetBool("verbose")
		rp := processTopoInput(mt)
		RunTopo(mt, rp)
	},
}

func processTopoInput(mt *ModelTopo) (rp *InputParameters.RunParameters) {
	var (
		err      error
		willExit bool
	)
	rp = &InputParameters.RunParameters{}
	if len(mt.ParamsFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mt.ParamsFile); err != nil {
			panic(err)
		}
		if err = rp.Parse(data); err != nil {
			panic(err)
		}
	}
	// Flags override the parameters file
	if len(mt.MeshFile) != 0 {
		rp.MeshFile = mt.MeshFile
	}
	if mt.Parallel != 0 {
		rp.ParallelDegree = mt.Parallel
	}
	if mt.Graph {
		rp.Plot = true
	}
	if mt.PlotPoints {
		rp.PlotPoints = true
	}
	if len(rp.MeshFile) == 0 {
		err = fmt.Errorf("must supply a mesh file (-F, --meshFile) in SU2 (.su2) or Gambit (.neu) format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Unit Square"
MeshFile: "square.su2"
ParallelDegree: 4
Smooth:
    Passes: 3
    MinQuality: 0.4
########################################
`
		fmt.Printf("Example Parameters File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(TopoCmd)
	TopoCmd.Flags().StringP("meshFile", "F", "", "Mesh file to read in SU2 (.su2) or Gambit (.neu) format")
	TopoCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for run parameters like:\n\t- ParallelDegree\n\t- Smooth passes")
	TopoCmd.Flags().IntP("parallel", "p", 0, "number of goroutines used to build the connectivity")
	TopoCmd.Flags().BoolP("graph", "g", false, "display the mesh colored by element quality")
	TopoCmd.Flags().Bool("plotPoints", false, "include vertex glyphs in the plot")
	TopoCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
	TopoCmd.Flags().BoolP("verbose", "v", false, "print progress while reading and building")
}

func RunTopo(mt *ModelTopo, rp *InputParameters.RunParameters) {
	if mt.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	rp.Print()
	msh := readfiles.ReadMeshFile(rp.MeshFile, mt.Verbose)
	start := time.Now()
	tp := topology.NewFromMesh2D(msh)
	if rp.ParallelDegree > 1 {
		tp.BuildAllParallel(rp.ParallelDegree)
	} else {
		tp.BuildAll()
	}
	if mt.Verbose {
		fmt.Printf("Connectivity built in %v\n", time.Since(start))
	}
	for pass := 0; pass < rp.Smooth.Passes; pass++ {
		if rp.Smooth.MinQuality > 0 &&
			quality.NewReport(msh).TriShape.Min >= rp.Smooth.MinQuality {
			break
		}
		moved := quality.Smooth(msh, tp, 1)
		fmt.Printf("Smoothing pass %d moved %d vertices\n", pass+1, moved)
	}
	report := quality.NewReport(msh)
	report.Print()
	boundary := tp.BoundaryEdges()
	fmt.Printf("Boundary edges: %d of %d\n", len(boundary), len(msh.Edges))
	for _, name := range msh.EdgeTags.Names() {
		indexes, _ := msh.EdgeTags.RegisteredIndexes(name)
		fmt.Printf("Marker [%s] has %d edges\n", name, len(indexes))
	}
	if rp.Plot {
		readfiles.PlotMesh(msh, quality.TriShapeQualities(msh), rp.PlotPoints)
		fmt.Printf("Plot active, Ctrl-C to exit\n")
		utils.SleepFor(600000)
	}
}
