package network

import "errors"

var (
	// ErrNodeNotFound is returned when an edge references a node ID absent from the graph.
	ErrNodeNotFound = errors.New("network: node not found")
	// ErrDegenerateGeometry is returned when an edge's ndref resolves to fewer than 2 coordinates.
	ErrDegenerateGeometry = errors.New("network: degenerate edge geometry")
)
