// Package metrics registers the Prometheus collectors exported by the mesh
// server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP requests processed, labeled by method, path and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gomesh_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// Server response time per endpoint.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gomesh_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Connectivity passes run, labeled by pass name.
	TopologyBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gomesh_topology_builds_total",
			Help: "Total number of topology passes built",
		},
		[]string{"pass"},
	)

	// Element counts of the meshes held by the server.
	MeshElements = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gomesh_mesh_elements",
			Help: "Number of elements per held mesh and element kind",
		},
		[]string{"mesh", "kind"},
	)
)
