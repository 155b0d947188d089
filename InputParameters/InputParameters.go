package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type RunParameters struct {
	Title          string            `yaml:"Title"`
	MeshFile       string            `yaml:"MeshFile"`
	ParallelDegree int               `yaml:"ParallelDegree"`
	Plot           bool              `yaml:"Plot"`
	PlotPoints     bool              `yaml:"PlotPoints"`
	Smooth         SmoothParameters  `yaml:"Smooth"`
	Tags           map[string]string `yaml:"Tags"` // Key is a marker label, value is the role assigned to it
}

type SmoothParameters struct {
	Passes     int     `yaml:"Passes"`
	MinQuality float64 `yaml:"MinQuality"`
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Mesh File\n", rp.MeshFile)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", rp.ParallelDegree)
	fmt.Printf("[%d]\t\t\t\t= Smoothing Passes\n", rp.Smooth.Passes)
	fmt.Printf("%8.5f\t\t= Minimum Quality\n", rp.Smooth.MinQuality)
	keys := make([]string, len(rp.Tags))
	i := 0
	for k := range rp.Tags {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Tags[%s] = %v\n", key, rp.Tags[key])
	}
}
