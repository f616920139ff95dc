package core

import "errors"

// Sentinel errors for Store operations. These are the only two sentinel
// errors the storage layer defines; the one other error a Store call can
// return is whatever an installed VertexValidator reports from AddVertex.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
