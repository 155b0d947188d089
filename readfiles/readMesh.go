package readfiles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notargets/gomesh/mesh"
)

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string, verbose bool) (msh *mesh.Mesh2D) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".neu":
		return ReadGambit2D(filename, verbose)
	case ".su2":
		return ReadSU2(filename, verbose)
	default:
		panic(fmt.Errorf("unsupported mesh format: %s", ext))
	}
}
