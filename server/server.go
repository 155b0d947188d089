// Package server exposes meshes over HTTP: uploads, quality and topology
// queries, session commands and Prometheus metrics.
package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/session"
	"github.com/notargets/gomesh/topology"
)

// meshEntry pairs an uploaded mesh with its derived topology.
type meshEntry struct {
	Mesh *mesh.Mesh2D
	Topo *topology.Topology
}

// Server holds the uploaded meshes and a server-owned command session.
// All access goes through mu, the session itself is not thread safe.
type Server struct {
	meshes  map[string]*meshEntry
	session *session.Session
	mu      sync.RWMutex

	httpServer *http.Server
}

func NewServer(httpAddr string) (s *Server) {
	s = &Server{
		meshes:  make(map[string]*meshEntry),
		session: session.NewSession(),
	}

	mux := http.NewServeMux()
	s.registerHTTPHandlers(mux)

	// Recovery outermost so it catches everything, logging inside it
	var handler http.Handler = mux
	handler = s.LoggingMiddleware(handler)
	handler = s.RecoveryMiddleware(handler)

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /healthz", s.handleHealthz)
	rootMux.Handle("GET /metrics", promhttp.Handler())
	rootMux.Handle("/", handler)
	s.httpServer = &http.Server{
		Addr:    httpAddr,
		Handler: rootMux,
	}
	return
}

// Run starts the HTTP server and blocks until Shutdown.
func (s *Server) Run() error {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server, letting in-flight requests finish.
func (s *Server) Shutdown() {
	log.Println("Starting graceful shutdown of HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
}
