package colorgraph

import "errors"

// Sentinel errors for colorgraph operations, mirroring core's
// sentinel-plus-%w-wrap policy: callers branch with errors.Is, never on
// formatted strings.
var (
	// ErrEmptyVertexID indicates the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("colorgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("colorgraph: vertex not found")

	// ErrVertexExists indicates AddVertex was called twice for the same ID
	// with conflicting colors.
	ErrVertexExists = errors.New("colorgraph: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("colorgraph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a Simple graph.
	ErrLoopNotAllowed = errors.New("colorgraph: self-loop not allowed on a simple graph")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a Simple graph.
	ErrMultiEdgeNotAllowed = errors.New("colorgraph: parallel edges not allowed on a simple graph")
)
