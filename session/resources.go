package session

import (
	"fmt"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/topology"
)

// ResourceKind selects the live field of a Resource.
type ResourceKind uint8

const (
	UIntKind ResourceKind = iota
	FloatsKind
	Mesh2DKind
	Mesh3DKind
	TopologyKind
)

func (rk ResourceKind) String() string {
	switch rk {
	case UIntKind:
		return "uint"
	case FloatsKind:
		return "floats"
	case Mesh2DKind:
		return "mesh2d"
	case Mesh3DKind:
		return "mesh3d"
	case TopologyKind:
		return "topology"
	default:
		panic("unknown resource kind")
	}
}

// Resource is a tagged union of the value kinds a session can hold, Kind
// selects the live field.
type Resource struct {
	Kind   ResourceKind
	UInt   int
	Floats []float64
	Mesh2D *mesh.Mesh2D
	Mesh3D *mesh.Mesh3D
	Topo   *topology.Topology
}

func (sn *Session) define(id string, rsrc *Resource) (err error) {
	if id == "" {
		return fmt.Errorf("output id must not be empty")
	}
	if _, ok := sn.Resources[id]; ok {
		return fmt.Errorf("id %q already defined", id)
	}
	sn.Resources[id] = rsrc
	return
}

func (sn *Session) resource(id string) (rsrc *Resource, err error) {
	rsrc, ok := sn.Resources[id]
	if !ok {
		err = fmt.Errorf("undefined id %q", id)
	}
	return
}

func (sn *Session) uintAt(id string) (value int, err error) {
	rsrc, err := sn.resource(id)
	if err != nil {
		return
	}
	if rsrc.Kind != UIntKind {
		err = fmt.Errorf("no uint associated to id %q, have %s", id, rsrc.Kind)
		return
	}
	value = rsrc.UInt
	return
}

func (sn *Session) mesh2DAt(id string) (m *mesh.Mesh2D, err error) {
	rsrc, err := sn.resource(id)
	if err != nil {
		return
	}
	if rsrc.Kind != Mesh2DKind {
		err = fmt.Errorf("no 2d mesh associated to id %q, have %s", id, rsrc.Kind)
		return
	}
	m = rsrc.Mesh2D
	return
}

func (sn *Session) topologyAt(id string) (tp *topology.Topology, err error) {
	rsrc, err := sn.resource(id)
	if err != nil {
		return
	}
	if rsrc.Kind != TopologyKind {
		err = fmt.Errorf("no topology associated to id %q, have %s", id, rsrc.Kind)
		return
	}
	tp = rsrc.Topo
	return
}
