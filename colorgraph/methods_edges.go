// File: methods_edges.go
// Role: edge lifecycle, shared adjacency bookkeeping (base), and the
// Simple/Multi-specific AddEdge constraints (spec §3: Simple forbids
// parallel edges and self-loops; Multi allows both plus edge colors).

package colorgraph

import (
	"sort"

	"github.com/katalvlaran/diagcanon/attrset"
)

// addEdgeLocked inserts e into b.edges and mirrors it into adjacency both
// ways (every edge here is undirected). Caller must hold muEdgeAdj.
func (b *base) addEdgeLocked(e *Edge) {
	b.edges[e.ID] = e
	b.linkLocked(e.From, e.To, e.ID)
	if e.From != e.To {
		b.linkLocked(e.To, e.From, e.ID)
	}
}

func (b *base) linkLocked(from, to, edgeID string) {
	if _, ok := b.adj[from]; !ok {
		b.adj[from] = make(map[string]map[string]struct{})
	}
	if _, ok := b.adj[from][to]; !ok {
		b.adj[from][to] = make(map[string]struct{})
	}
	b.adj[from][to][edgeID] = struct{}{}
}

// removeEdgeFromAdjLocked undoes addEdgeLocked's adjacency bookkeeping.
// Caller must hold muEdgeAdj.
func (b *base) removeEdgeFromAdjLocked(eid string, e *Edge) {
	if nbrs, ok := b.adj[e.From]; ok {
		delete(nbrs[e.To], eid)
		if len(nbrs[e.To]) == 0 {
			delete(nbrs, e.To)
		}
	}
	if e.From != e.To {
		if nbrs, ok := b.adj[e.To]; ok {
			delete(nbrs[e.From], eid)
			if len(nbrs[e.From]) == 0 {
				delete(nbrs, e.From)
			}
		}
	}
}

// HasEdge reports whether any edge connects from and to (in either order).
// Complexity: O(1).
func (b *base) HasEdge(from, to string) bool {
	b.muEdgeAdj.RLock()
	defer b.muEdgeAdj.RUnlock()
	_, ok := b.adj[from][to]
	return ok
}

// RemoveEdge deletes the edge with the given ID.
// Complexity: O(1).
func (b *base) RemoveEdge(id string) error {
	b.muEdgeAdj.Lock()
	defer b.muEdgeAdj.Unlock()
	e, ok := b.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	b.removeEdgeFromAdjLocked(id, e)
	delete(b.edges, id)
	return nil
}

// Edges returns every edge, ordered ascending by (min endpoint, max
// endpoint, ID), with IDs compared as strings; edge colors play no part
// in the order.
// Complexity: O(E log E).
func (b *base) Edges() []*Edge {
	b.muEdgeAdj.RLock()
	defer b.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(b.edges))
	for _, e := range b.edges {
		out = append(out, &Edge{ID: e.ID, From: e.From, To: e.To, Color: e.Color.Clone()})
	}
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i], out[j]) })
	return out
}

func edgeLess(a, c *Edge) bool {
	amin, amax := minmax(a.From, a.To)
	cmin, cmax := minmax(c.From, c.To)
	if amin != cmin {
		return amin < cmin
	}
	if amax != cmax {
		return amax < cmax
	}
	return a.ID < c.ID
}

func minmax(a, b string) (string, string) {
	if a <= b {
		return a, b
	}
	return b, a
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (b *base) EdgeCount() int {
	b.muEdgeAdj.RLock()
	defer b.muEdgeAdj.RUnlock()
	return len(b.edges)
}

// AddEdge inserts an edge between from and to. Simple graphs reject
// self-loops (ErrLoopNotAllowed) and parallel edges (ErrMultiEdgeNotAllowed);
// Simple edges never carry a color.
// Complexity: O(1) amortized.
func (g *Simple) AddEdge(from, to string) (string, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return "", ErrVertexNotFound
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adj[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}
	id := g.newEdgeID()
	g.addEdgeLocked(&Edge{ID: id, From: from, To: to})
	return id, nil
}

// AddEdge inserts a colored edge between from and to. Parallel edges and
// self-loops (from == to) are both permitted.
// Complexity: O(1) amortized.
func (g *Multi) AddEdge(from, to string, color attrset.Set) (string, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return "", ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	id := g.newEdgeID()
	g.addEdgeLocked(&Edge{ID: id, From: from, To: to, Color: color.Clone()})
	return id, nil
}
