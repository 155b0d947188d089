package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/notargets/gomesh/metrics"
	"github.com/notargets/gomesh/quality"
	"github.com/notargets/gomesh/readfiles"
	"github.com/notargets/gomesh/session"
	"github.com/notargets/gomesh/topology"
)

func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.router)
}

// router parses the URL and delegates to the matching handler.
func (s *Server) router(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if path == "/mesh" {
		s.handleMeshUpload(w, r)
		return
	}
	if strings.HasPrefix(path, "/mesh/") {
		rest := strings.TrimPrefix(path, "/mesh/")
		switch {
		case strings.HasSuffix(rest, "/report"):
			s.handleMeshReport(w, r, strings.TrimSuffix(rest, "/report"))
		case strings.HasSuffix(rest, "/topology"):
			s.handleMeshTopology(w, r, strings.TrimSuffix(rest, "/topology"))
		default:
			s.writeHTTPError(w, http.StatusNotFound, "endpoint not found")
		}
		return
	}
	if path == "/session" {
		s.handleSession(w, r)
		return
	}

	s.writeHTTPError(w, http.StatusNotFound, "endpoint not found")
}

func (s *Server) handleMeshUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use POST to upload a mesh")
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := buildEntry(data)
	if err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := uuid.New().String()
	s.mu.Lock()
	s.meshes[id] = entry
	s.mu.Unlock()

	for kind, n := range map[string]int{
		"vertices":    len(entry.Mesh.Vertices),
		"edges":       len(entry.Mesh.Edges),
		"triangles":   len(entry.Mesh.Triangles),
		"quadrangles": len(entry.Mesh.Quadrangles),
	} {
		metrics.MeshElements.WithLabelValues(id, kind).Set(float64(n))
	}
	for _, pass := range []string{"vertices", "edges", "triangles"} {
		metrics.TopologyBuildsTotal.WithLabelValues(pass).Inc()
	}

	s.writeHTTPResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// buildEntry parses an uploaded SU2 mesh and derives its topology,
// converting parser and build faults into errors.
func buildEntry(data []byte) (entry *meshEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entry, err = nil, fmt.Errorf("%v", r)
		}
	}()
	msh := readfiles.ReadSU2Data(data)
	entry = &meshEntry{Mesh: msh, Topo: topology.NewFromMesh2D(msh).BuildAll()}
	return
}

func (s *Server) handleMeshReport(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET to fetch a report")
		return
	}
	s.mu.RLock()
	entry, ok := s.meshes[id]
	s.mu.RUnlock()
	if !ok {
		s.writeHTTPError(w, http.StatusNotFound, fmt.Sprintf("mesh %q not found", id))
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, quality.NewReport(entry.Mesh))
}

type topologySummary struct {
	NumVertices   int   `json:"num_vertices"`
	NumEdges      int   `json:"num_edges"`
	NumTris       int   `json:"num_tris"`
	BoundaryEdges []int `json:"boundary_edges"`
}

func (s *Server) handleMeshTopology(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET to fetch a topology summary")
		return
	}
	s.mu.RLock()
	entry, ok := s.meshes[id]
	s.mu.RUnlock()
	if !ok {
		s.writeHTTPError(w, http.StatusNotFound, fmt.Sprintf("mesh %q not found", id))
		return
	}
	tp := entry.Topo
	s.writeHTTPResponse(w, http.StatusOK, topologySummary{
		NumVertices:   tp.NumVertices,
		NumEdges:      len(tp.Edges),
		NumTris:       len(tp.Tris),
		BoundaryEdges: tp.BoundaryEdges(),
	})
}

// handleSession applies a JSON list of commands to the server-owned
// session. Resources persist between calls.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use POST to apply session commands")
		return
	}
	var cmds []session.Command
	if err := json.NewDecoder(r.Body).Decode(&cmds); err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "invalid JSON, expected a list of commands")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]session.Result, 0, len(cmds))
	for _, cmd := range cmds {
		res, err := s.session.Apply(cmd)
		if err != nil {
			s.writeHTTPError(w, http.StatusBadRequest, err.Error())
			return
		}
		results = append(results, *res)
	}
	s.writeHTTPResponse(w, http.StatusOK, results)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeHTTPError(w http.ResponseWriter, statusCode int, message string) {
	s.writeHTTPResponse(w, statusCode, map[string]string{"error": message})
}
