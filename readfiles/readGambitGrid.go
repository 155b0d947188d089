package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gomesh/mesh"
)

func ReadGambit2D(filename string, verbose bool) (msh *mesh.Mesh2D) {
	var (
		file   *os.File
		err    error
		reader *bufio.Reader
	)
	if verbose {
		fmt.Printf("Reading Gambit Neutral file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	reader = bufio.NewReader(file)

	// Skip first six lines
	skipLines(6, reader)

	// Get dimensions
	Nv, K, Nmats, Nbcs, Nsd := readGambitHeader(reader)
	skipLines(2, reader)

	if verbose {
		fmt.Printf("Nv = %d, K = %d\n", Nv, K)
		fmt.Printf("Nmats = %d, Nbcs = %d\n%d space dimensions\n", Nmats, Nbcs, Nsd)
	}
	if Nsd != 2 {
		panic(fmt.Errorf("unable to deal with %d dimensional meshes right now", Nsd))
	}

	xs, ys := readGambitVertices(Nv, reader)
	skipLines(2, reader)

	tris := readGambitTris(K, reader)
	skipLines(2, reader)

	if verbose {
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\n",
			floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys))
	}

	msh = mesh.NewMesh2D()
	for i := 0; i < Nv; i++ {
		msh.AddVertex(xs[i], ys[i])
	}
	for _, tri := range tris {
		msh.AddTri(tri[0], tri[1], tri[2])
	}

	// Material groups become element tags
	for i := 0; i < Nmats; i++ {
		title, elements := readGambitMaterialGroup(reader)
		for _, k := range elements {
			if title != "" {
				msh.TriTags.Register(title, k)
			}
		}
		skipLines(2, reader)
	}

	// Boundary condition sets become tagged edges
	readGambitBCs(Nbcs, reader, tris, msh)
	return
}

func readGambitHeader(reader *bufio.Reader) (Nv, K, Nmats, Nbcs, Nsd int) {
	/*
		Nv      // num nodes in mesh
		K       // num elements
		Nmats   // num material groups
		Nbcs    // num boundary groups
		Nsd;    // num space dimensions
	*/
	var (
		line   = getLine(reader)
		n, dum int
		err    error
	)
	nargs := 6
	if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &Nv, &K, &Nmats, &Nbcs, &Nsd, &dum); err != nil || n < nargs {
		if err == nil && n < nargs {
			err = fmt.Errorf("read fewer than %d dimensions, read %d, line: %s", nargs, n, line)
		}
		panic(err)
	}
	return
}

func readGambitVertices(Nv int, reader *bufio.Reader) (xs, ys []float64) {
	var (
		line   string
		err    error
		n, ind int
	)
	nargs := 3
	xs, ys = make([]float64, Nv), make([]float64, Nv)
	for i := 0; i < Nv; i++ {
		line = getLine(reader)
		if n, err = fmt.Sscanf(line, "%d", &ind); err != nil || n < 1 {
			err = fmt.Errorf("error reading index, line: %s, err: %v\n", line, err)
			panic(err)
		}
		if n, err = fmt.Sscanf(line, "%d %f %f", &ind, &xs[ind-1], &ys[ind-1]); err != nil || n < nargs {
			if err == nil && n < nargs {
				err = fmt.Errorf("read fewer than required dimensions, read %d, need %d\n, line: %s", n, nargs, line)
			}
			panic(err)
		}
	}
	return
}

func readGambitTris(K int, reader *bufio.Reader) (tris [][3]int) {
	//-------------------------------------
	// ENDOFSECTION
	//    ELEMENTS/CELLS 1.3.0
	//      1  3  3        1       2       3
	//      2  3  3        3       2       4
	var (
		line                       string
		err                        error
		n, ind, typ, nfaces, nargs int
	)
	tris = make([][3]int, K)
	for i := 0; i < K; i++ {
		line = getLine(reader)
		nargs = 6
		var n1, n2, n3 int
		if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &ind, &typ, &nfaces, &n1, &n2, &n3); err != nil || n < nargs {
			if err == nil && n < nargs {
				err = fmt.Errorf("read fewer than required dimensions, read %d, need %d\n, line: %s", n, nargs, line)
			}
			panic(err)
		}
		tris[ind-1] = [3]int{n1 - 1, n2 - 1, n3 - 1}
	}
	return
}

func readGambitMaterialGroup(reader *bufio.Reader) (title string, elements []int) {
	/*
	   GROUP:           1 ELEMENTS:        977 MATERIAL:      1.000 NFLAGS:          0
	                     epsilon: 1.000
	          0
	*/
	var (
		line   = getLine(reader)
		n      int
		err    error
		gn     int
		elnum  int
		matval float64
	)
	nargs := 3
	if n, err = fmt.Sscanf(line, "GROUP: %11d ELEMENTS:%11d MATERIAL:%11f", &gn, &elnum, &matval); err != nil || n < nargs {
		if err == nil && n < nargs {
			err = fmt.Errorf("read fewer than %d dimensions, read %d, line: %s", nargs, n, line)
		}
		panic(err)
	}
	title = strings.TrimSpace(getLine(reader))
	skipLines(1, reader)

	nn := make([]int, 10)
	var added int
	if elnum%10 != 0 {
		added = 1
	}
	numLines := elnum/10 + added
	for i := 0; i < numLines; i++ {
		line = getLine(reader)
		nargs = 10
		if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d %d %d %d %d", &nn[0], &nn[1], &nn[2], &nn[3], &nn[4], &nn[5], &nn[6], &nn[7], &nn[8], &nn[9]); err != nil || n < nargs {
			if !(n < nargs && i == numLines-1) {
				if err == nil && n < nargs {
					err = fmt.Errorf("read fewer than %d dimensions, read %d, line: %s", nargs, n, line)
				}
				panic(err)
			}
		}
		for j := 0; j < n; j++ {
			elements = append(elements, nn[j]-1)
		}
	}
	return
}

func readGambitBCs(Nbcs int, reader *bufio.Reader, tris [][3]int, msh *mesh.Mesh2D) {
	var (
		line, bctyp string
		err         error
		nargs       int
		n, bcid     int
	)
	for i := 0; i < Nbcs; i++ {
		// Read BC header, if BC text is "Cyl", read a float parameter
		if i != 0 {
			skipLines(1, reader)
		}
		line = getLine(reader)
		if n, err = fmt.Sscanf(line, "%32s", &bctyp); err != nil {
			panic(err)
		}
		bctyp = strings.ToLower(strings.Trim(bctyp, " "))
		var paramf float64
		var numfaces int
		switch bctyp {
		case "cyl":
			if n, err = fmt.Sscanf(line, "%32s%8f%8d", &bctyp, &paramf, &numfaces); err != nil {
				panic(err)
			}
		default:
			if n, err = fmt.Sscanf(line, "%32s%8d%8d", &bctyp, &bcid, &numfaces); err != nil {
				panic(err)
			}
		}
		for j := 0; j < numfaces; j++ {
			line = getLine(reader)
			nargs = 3
			var kp1, n2, faceNumberp1 int
			if n, err = fmt.Sscanf(line, "%d %d %d", &kp1, &n2, &faceNumberp1); err != nil || n < nargs {
				if err == nil && n < nargs {
					err = fmt.Errorf("read fewer than required dimensions, read %d, need %d\n, line: %s", n, nargs, line)
				}
				panic(err)
			}
			verts := tris[kp1-1]
			switch faceNumberp1 {
			case 1:
				msh.AddTaggedEdge(verts[0], verts[1], bctyp)
			case 2:
				msh.AddTaggedEdge(verts[1], verts[2], bctyp)
			case 3:
				msh.AddTaggedEdge(verts[2], verts[0], bctyp)
			}
		}
		skipLines(1, reader)
	}
}
