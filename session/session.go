// Package session interprets commands against named resources: scripts and
// remote clients create meshes, derive topology and query results through
// it. Unlike the core packages, which fault on misuse, session failures are
// returned as errors for the caller to report.
package session

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/quality"
	"github.com/notargets/gomesh/readfiles"
	"github.com/notargets/gomesh/topology"
)

// Supported command ops with the Command fields each one reads.
const (
	NewUInt       = "new_uint"       // Value -> Output
	NewFloats     = "new_floats"     // Coords -> Output
	NewMesh2D     = "new_mesh2d"     // -> Output
	NewMesh3D     = "new_mesh3d"     // -> Output
	PushVertex    = "push_vertex"    // Mesh, Coords, optional Tag
	PushEdge      = "push_edge"      // Mesh, Verts[2], optional Tag
	PushTri       = "push_tri"       // Mesh, Verts[3], optional Tag
	PushQuad      = "push_quad"      // Mesh, Verts[4], optional Tag
	GetVertex     = "get_vertex"     // Mesh, Index or ID of a uint, optional Output
	ReadSU2       = "read_su2"       // Path -> Output
	BuildTopology = "build_topology" // Mesh, Value as parallel degree -> Output
	BoundaryEdges = "boundary_edges" // Topology
	QualityReport = "quality_report" // Mesh
	TagIndexes    = "tag_indices"    // Mesh, Tag
)

// Command is one session operation. Op selects the operation, the other
// fields carry its arguments and stay at their zero values when unused.
type Command struct {
	Op       string    `json:"op"`
	ID       string    `json:"id,omitempty"`
	Mesh     string    `json:"mesh,omitempty"`
	Topology string    `json:"topology,omitempty"`
	Coords   []float64 `json:"coords,omitempty"`
	Verts    []int     `json:"verts,omitempty"`
	Index    int       `json:"index,omitempty"`
	Tag      string    `json:"tag,omitempty"`
	Value    int       `json:"value,omitempty"`
	Path     string    `json:"path,omitempty"`
	Output   string    `json:"output,omitempty"`
}

// Result echoes the applied op together with any payload it produced.
type Result struct {
	Op      string           `json:"op"`
	Output  string           `json:"output,omitempty"`
	Coords  []float64        `json:"coords,omitempty"`
	Indexes []int            `json:"indexes,omitempty"`
	Tags    map[string][]int `json:"tags,omitempty"`
	Report  *quality.Report  `json:"report,omitempty"`
}

// Session holds named resources plus the commands queued against them and
// the history of commands already applied.
type Session struct {
	Resources map[string]*Resource
	Queue     []Command
	History   []Command
}

func NewSession() (sn *Session) {
	sn = &Session{Resources: make(map[string]*Resource)}
	return
}

// Push appends a command to the queue without applying it.
func (sn *Session) Push(cmd Command) {
	sn.Queue = append(sn.Queue, cmd)
}

// ApplyQueued applies the queued commands in order, popping each applied
// command off the queue. On the first failure the failing command and the
// rest of the queue are left in place.
func (sn *Session) ApplyQueued() (results []Result, err error) {
	var res *Result
	for len(sn.Queue) > 0 {
		if res, err = sn.Apply(sn.Queue[0]); err != nil {
			return
		}
		results = append(results, *res)
		sn.Queue = sn.Queue[1:]
	}
	return
}

// RunScript applies a YAML list of commands through the queue.
func (sn *Session) RunScript(path string) (results []Result, err error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return
	}
	var cmds []Command
	if err = yaml.Unmarshal(data, &cmds); err != nil {
		return
	}
	for _, cmd := range cmds {
		sn.Push(cmd)
	}
	return sn.ApplyQueued()
}

// Apply applies one command immediately. Commands that succeed are recorded
// in the history.
func (sn *Session) Apply(cmd Command) (res *Result, err error) {
	switch cmd.Op {
	case NewUInt:
		err = sn.define(cmd.Output, &Resource{Kind: UIntKind, UInt: cmd.Value})
	case NewFloats:
		err = sn.define(cmd.Output,
			&Resource{Kind: FloatsKind, Floats: append([]float64{}, cmd.Coords...)})
	case NewMesh2D:
		err = sn.define(cmd.Output, &Resource{Kind: Mesh2DKind, Mesh2D: mesh.NewMesh2D()})
	case NewMesh3D:
		err = sn.define(cmd.Output, &Resource{Kind: Mesh3DKind, Mesh3D: mesh.NewMesh3D()})
	case PushVertex:
		err = sn.pushVertex(cmd)
	case PushEdge, PushTri, PushQuad:
		err = sn.pushElement(cmd)
	case GetVertex:
		res, err = sn.getVertex(cmd)
	case ReadSU2:
		err = sn.readSU2(cmd)
	case BuildTopology:
		err = sn.buildTopology(cmd)
	case BoundaryEdges:
		res, err = sn.boundaryEdges(cmd)
	case QualityReport:
		res, err = sn.qualityReport(cmd)
	case TagIndexes:
		res, err = sn.tagIndexes(cmd)
	default:
		err = fmt.Errorf("unsupported command %q", cmd.Op)
	}
	if err != nil {
		return
	}
	if res == nil {
		res = &Result{Op: cmd.Op, Output: cmd.Output}
	}
	sn.History = append(sn.History, cmd)
	return
}

// capture converts a fault raised by the core packages into an error.
func capture(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %v", op, r)
	}
}

func (sn *Session) pushVertex(cmd Command) (err error) {
	rsrc, err := sn.resource(cmd.Mesh)
	if err != nil {
		return
	}
	switch rsrc.Kind {
	case Mesh2DKind:
		if len(cmd.Coords) != 2 {
			return fmt.Errorf("%s into a 2d mesh needs 2 coordinates, got %d",
				cmd.Op, len(cmd.Coords))
		}
		if cmd.Tag != "" {
			rsrc.Mesh2D.AddTaggedVertex(cmd.Coords[0], cmd.Coords[1], cmd.Tag)
		} else {
			rsrc.Mesh2D.AddVertex(cmd.Coords[0], cmd.Coords[1])
		}
	case Mesh3DKind:
		if len(cmd.Coords) != 3 {
			return fmt.Errorf("%s into a 3d mesh needs 3 coordinates, got %d",
				cmd.Op, len(cmd.Coords))
		}
		if cmd.Tag != "" {
			rsrc.Mesh3D.AddTaggedVertex(cmd.Coords[0], cmd.Coords[1], cmd.Coords[2], cmd.Tag)
		} else {
			rsrc.Mesh3D.AddVertex(cmd.Coords[0], cmd.Coords[1], cmd.Coords[2])
		}
	default:
		err = fmt.Errorf("no mesh associated to id %q, have %s", cmd.Mesh, rsrc.Kind)
	}
	return
}

func (sn *Session) pushElement(cmd Command) (err error) {
	rsrc, err := sn.resource(cmd.Mesh)
	if err != nil {
		return
	}
	var arity int
	switch cmd.Op {
	case PushEdge:
		arity = 2
	case PushTri:
		arity = 3
	case PushQuad:
		arity = 4
	}
	if len(cmd.Verts) != arity {
		return fmt.Errorf("%s needs %d vertex indices, got %d", cmd.Op, arity, len(cmd.Verts))
	}
	v := cmd.Verts
	switch rsrc.Kind {
	case Mesh2DKind:
		m := rsrc.Mesh2D
		switch cmd.Op {
		case PushEdge:
			if cmd.Tag != "" {
				m.AddTaggedEdge(v[0], v[1], cmd.Tag)
			} else {
				m.AddEdge(v[0], v[1])
			}
		case PushTri:
			if cmd.Tag != "" {
				m.AddTaggedTri(v[0], v[1], v[2], cmd.Tag)
			} else {
				m.AddTri(v[0], v[1], v[2])
			}
		case PushQuad:
			if cmd.Tag != "" {
				m.AddTaggedQuad(v[0], v[1], v[2], v[3], cmd.Tag)
			} else {
				m.AddQuad(v[0], v[1], v[2], v[3])
			}
		}
	case Mesh3DKind:
		m := rsrc.Mesh3D
		switch cmd.Op {
		case PushEdge:
			if cmd.Tag != "" {
				m.AddTaggedEdge(v[0], v[1], cmd.Tag)
			} else {
				m.AddEdge(v[0], v[1])
			}
		case PushTri:
			if cmd.Tag != "" {
				m.AddTaggedTri(v[0], v[1], v[2], cmd.Tag)
			} else {
				m.AddTri(v[0], v[1], v[2])
			}
		case PushQuad:
			if cmd.Tag != "" {
				m.AddTaggedQuad(v[0], v[1], v[2], v[3], cmd.Tag)
			} else {
				m.AddQuad(v[0], v[1], v[2], v[3])
			}
		}
	default:
		err = fmt.Errorf("no mesh associated to id %q, have %s", cmd.Mesh, rsrc.Kind)
	}
	return
}

func (sn *Session) getVertex(cmd Command) (res *Result, err error) {
	index := cmd.Index
	if cmd.ID != "" {
		if index, err = sn.uintAt(cmd.ID); err != nil {
			return
		}
	}
	rsrc, err := sn.resource(cmd.Mesh)
	if err != nil {
		return
	}
	var coords []float64
	switch rsrc.Kind {
	case Mesh2DKind:
		if index < 0 || index >= len(rsrc.Mesh2D.Vertices) {
			return nil, fmt.Errorf("vertex index %d out of range in mesh %q", index, cmd.Mesh)
		}
		p := rsrc.Mesh2D.Vertices[index]
		coords = []float64{p.Coords.X[0], p.Coords.X[1]}
	case Mesh3DKind:
		if index < 0 || index >= len(rsrc.Mesh3D.Vertices) {
			return nil, fmt.Errorf("vertex index %d out of range in mesh %q", index, cmd.Mesh)
		}
		p := rsrc.Mesh3D.Vertices[index]
		coords = []float64{p.Coords.X[0], p.Coords.X[1], p.Coords.X[2]}
	default:
		return nil, fmt.Errorf("no mesh associated to id %q, have %s", cmd.Mesh, rsrc.Kind)
	}
	if cmd.Output != "" {
		if err = sn.define(cmd.Output, &Resource{Kind: FloatsKind, Floats: coords}); err != nil {
			return nil, err
		}
	}
	res = &Result{Op: cmd.Op, Output: cmd.Output, Coords: coords}
	return
}

func (sn *Session) readSU2(cmd Command) (err error) {
	defer capture(cmd.Op, &err)
	msh := readfiles.ReadSU2(cmd.Path, false)
	return sn.define(cmd.Output, &Resource{Kind: Mesh2DKind, Mesh2D: msh})
}

func (sn *Session) buildTopology(cmd Command) (err error) {
	defer capture(cmd.Op, &err)
	rsrc, err := sn.resource(cmd.Mesh)
	if err != nil {
		return
	}
	var tp *topology.Topology
	switch rsrc.Kind {
	case Mesh2DKind:
		tp = topology.NewFromMesh2D(rsrc.Mesh2D)
	case Mesh3DKind:
		tp = topology.NewFromMesh3D(rsrc.Mesh3D)
	default:
		return fmt.Errorf("no mesh associated to id %q, have %s", cmd.Mesh, rsrc.Kind)
	}
	if cmd.Value > 1 {
		tp.BuildAllParallel(cmd.Value)
	} else {
		tp.BuildAll()
	}
	return sn.define(cmd.Output, &Resource{Kind: TopologyKind, Topo: tp})
}

func (sn *Session) boundaryEdges(cmd Command) (res *Result, err error) {
	tp, err := sn.topologyAt(cmd.Topology)
	if err != nil {
		return
	}
	res = &Result{Op: cmd.Op, Indexes: tp.BoundaryEdges()}
	return
}

func (sn *Session) qualityReport(cmd Command) (res *Result, err error) {
	defer capture(cmd.Op, &err)
	m, err := sn.mesh2DAt(cmd.Mesh)
	if err != nil {
		return
	}
	r := quality.NewReport(m)
	res = &Result{Op: cmd.Op, Report: &r}
	return
}

func (sn *Session) tagIndexes(cmd Command) (res *Result, err error) {
	rsrc, err := sn.resource(cmd.Mesh)
	if err != nil {
		return
	}
	var sets map[string]mesh.TagSet
	switch rsrc.Kind {
	case Mesh2DKind:
		m := rsrc.Mesh2D
		sets = map[string]mesh.TagSet{
			"vertices":    m.VertexTags,
			"edges":       m.EdgeTags,
			"triangles":   m.TriTags,
			"quadrangles": m.QuadTags,
		}
	case Mesh3DKind:
		m := rsrc.Mesh3D
		sets = map[string]mesh.TagSet{
			"vertices":    m.VertexTags,
			"edges":       m.EdgeTags,
			"triangles":   m.TriTags,
			"quadrangles": m.QuadTags,
			"tetrahedra":  m.TetTags,
			"hexahedra":   m.HexaTags,
		}
	default:
		return nil, fmt.Errorf("no mesh associated to id %q, have %s", cmd.Mesh, rsrc.Kind)
	}
	tags := make(map[string][]int)
	for kind, set := range sets {
		if indexes, ok := set.RegisteredIndexes(cmd.Tag); ok {
			tags[kind] = indexes
		}
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("tag %q not registered in mesh %q", cmd.Tag, cmd.Mesh)
	}
	res = &Result{Op: cmd.Op, Tags: tags}
	return
}
