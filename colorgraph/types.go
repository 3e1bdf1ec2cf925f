// File: types.go
// Role: Vertex, Edge, the shared internal base, and the Simple/Multi
// concrete graph types. Mirrors core/types.go's struct shapes, generalized
// from map[string]interface{} Metadata to attrset.Set Color.

package colorgraph

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/diagcanon/attrset"
)

// Vertex is a node carrying a unique ID and a color (attribute set).
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Color is this vertex's attribute set.
	Color attrset.Set
}

// Edge is an unordered connection between two vertices, carrying a unique
// ID and (on a Multi graph only) a color. From==To denotes a self-loop.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From and To are the edge's endpoints; the pair is unordered.
	From, To string

	// Color is this edge's attribute set. Always empty on a Simple graph.
	Color attrset.Set
}

// base holds the storage and locking shared by Simple and Multi.
//
// adjacency[v][u][edgeID] = struct{}{} mirrors core's nested-map
// adjacency list; both directions are populated since every edge here is
// undirected (spec: "an unordered pair of vertex identifiers").
type base struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextEdgeID uint64

	vertices map[string]*Vertex
	edges    map[string]*Edge
	adj      map[string]map[string]map[string]struct{}

	// Attrs is the graph-level attribute set (spec §3: "a graph-level
	// attribute set"; the teacher's core.Graph has no analogue).
	Attrs attrset.Set
}

func newBase(attrs attrset.Set) base {
	if attrs == nil {
		attrs = attrset.New(0)
	}
	return base{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string]map[string]struct{}),
		Attrs:    attrs,
	}
}

// newEdgeID generates the next monotonic textual edge ID ("e1", "e2", ...).
func (b *base) newEdgeID() string {
	n := atomic.AddUint64(&b.nextEdgeID, 1)
	return "e" + strconv.FormatUint(n, 10)
}

// Option configures a Simple or Multi graph at construction time.
type Option func(*base)

// WithGraphAttrs sets the graph-level attribute set.
func WithGraphAttrs(attrs attrset.Set) Option {
	return func(b *base) { b.Attrs = attrs }
}

// Simple is a vertex-colored graph with no parallel edges, no self-loops,
// and no edge colors (spec §3).
type Simple struct {
	base
}

// Multi is a vertex- and edge-colored multigraph: parallel edges and
// self-loops are permitted (spec §3).
type Multi struct {
	base
}

// NewSimple constructs an empty Simple graph.
func NewSimple(opts ...Option) *Simple {
	g := &Simple{base: newBase(nil)}
	for _, opt := range opts {
		opt(&g.base)
	}
	return g
}

// NewMulti constructs an empty Multi graph.
func NewMulti(opts ...Option) *Multi {
	g := &Multi{base: newBase(nil)}
	for _, opt := range opts {
		opt(&g.base)
	}
	return g
}
