package readfiles

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/gomesh/mesh"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle                     = 5
	ELType_Quadrilateral                = 9
	ELType_Tetrahedral                  = 10
	ELType_Hexahedral                   = 12
	ELType_Prism                        = 13
	ELType_Pyramid                      = 14
)

func ReadSU2(filename string, verbose bool) (msh *mesh.Mesh2D) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()

	msh = readSU2Mesh(bufio.NewReader(file))
	if verbose {
		fmt.Printf("Read %d vertices, %d triangles, %d marker edges\n",
			len(msh.Vertices), len(msh.Triangles), len(msh.Edges))
	}
	return
}

// ReadSU2Data parses SU2 content already in memory, as uploaded meshes
// arrive over HTTP.
func ReadSU2Data(data []byte) (msh *mesh.Mesh2D) {
	return readSU2Mesh(bufio.NewReader(bytes.NewReader(data)))
}

func readSU2Mesh(reader *bufio.Reader) (msh *mesh.Mesh2D) {
	dimensionality := readNumber(reader)
	if dimensionality != 2 {
		panic(fmt.Errorf("unable to deal with %d dimensional meshes right now", dimensionality))
	}
	msh = mesh.NewMesh2D()
	readElements(reader, msh)
	readVertices(reader, msh)
	readMarkers(reader, msh)
	return
}

func readElements(reader *bufio.Reader, msh *mesh.Mesh2D) {
	var (
		n          int
		nType      int
		v1, v2, v3 int
		err        error
	)
	K := readNumber(reader)
	for k := 0; k < K; k++ {
		line := getLine(reader)
		if n, err = fmt.Sscanf(line, "%d %d %d %d", &nType, &v1, &v2, &v3); err != nil {
			panic(err)
		}
		if n != 4 {
			panic("unable to read vertices")
		}
		if SU2ElementType(nType) != ELType_Triangle {
			panic("unable to deal with non-triangular elements right now")
		}
		msh.AddTri(v1, v2, v3)
	}
}

func readVertices(reader *bufio.Reader, msh *mesh.Mesh2D) {
	var (
		n    int
		x, y float64
		err  error
	)
	Nv := readNumber(reader)
	for i := 0; i < Nv; i++ {
		line := getLine(reader)
		if n, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			panic(err)
		}
		if n != 2 {
			panic("unable to read coordinates")
		}
		msh.AddVertex(x, y)
	}
}

func readMarkers(reader *bufio.Reader, msh *mesh.Mesh2D) {
	var (
		nType  int
		v1, v2 int
		err    error
	)
	NMarkers := readNumber(reader)
	for n := 0; n < NMarkers; n++ {
		label := readLabel(reader)
		nEdges := readNumber(reader)
		// A repeated label extends the existing tag
		// For instance: periodic markers come in pairs, so one tag collects both sides
		for i := 0; i < nEdges; i++ {
			line := getLine(reader)
			if _, err = fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil {
				panic(err)
			}
			if SU2ElementType(nType) != ELType_LINE {
				panic("markers should only contain line elements in 2D")
			}
			msh.AddTaggedEdge(v1, v2, label)
		}
	}
}

func getToken(reader *bufio.Reader) (token string) {
	var (
		line string
		err  error
	)
	line = getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		err = fmt.Errorf("badly formed input line [%s], should have an =", line)
		panic(err)
	}
	token = line[ind+1:]
	return
}

func readLabel(reader *bufio.Reader) (label string) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%s", &label); err != nil {
		err = fmt.Errorf("unable to read label from token: [%s]", token)
		panic(err)
	}
	label = strings.Trim(label, " ")
	return
}

func readNumber(reader *bufio.Reader) (num int) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		panic(err)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.Trim(getLine(reader), " ")
		ind := strings.Index(line, "%")
		if ind < 0 || ind != 0 {
			return
		}
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("early end of file")
		}
		panic(err)
	}
	line = line[:len(line)-1] // Strip away the newline
	return
}

func skipLines(n int, reader *bufio.Reader) {
	for i := 0; i < n; i++ {
		getLine(reader)
	}
}
