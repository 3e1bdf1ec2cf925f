// File: methods_clone.go
// Role: Clone/CloneEmpty, mirroring core/methods_clone.go's nextEdgeID
// carry-over convention so that future AddEdge calls on a clone never
// collide with the source graph's edge IDs.

package colorgraph

import "sync/atomic"

func (b *base) cloneEmptyInto(dst *base) {
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	b.muEdgeAdj.RLock()
	defer b.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&dst.nextEdgeID, atomic.LoadUint64(&b.nextEdgeID))
	dst.Attrs = b.Attrs.Clone()
	for id, v := range b.vertices {
		dst.vertices[id] = &Vertex{ID: v.ID, Color: v.Color.Clone()}
		dst.adj[id] = make(map[string]map[string]struct{})
	}
}

func (b *base) cloneEdgesInto(dst *base) {
	b.muEdgeAdj.RLock()
	defer b.muEdgeAdj.RUnlock()
	for eid, e := range b.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Color: e.Color.Clone()}
		dst.edges[eid] = ne
		dst.linkLocked(ne.From, ne.To, eid)
		if ne.From != ne.To {
			dst.linkLocked(ne.To, ne.From, eid)
		}
	}
}

// CloneEmpty returns a copy of g with identical vertices and graph
// attributes but no edges.
// Complexity: O(V).
func (g *Simple) CloneEmpty() *Simple {
	out := &Simple{base: newBase(nil)}
	g.cloneEmptyInto(&out.base)
	return out
}

// Clone returns a deep copy of g: vertices, edges, adjacency, and graph
// attributes.
// Complexity: O(V+E).
func (g *Simple) Clone() *Simple {
	out := g.CloneEmpty()
	g.cloneEdgesInto(&out.base)
	return out
}

// CloneEmpty returns a copy of mg with identical vertices and graph
// attributes but no edges.
// Complexity: O(V).
func (mg *Multi) CloneEmpty() *Multi {
	out := &Multi{base: newBase(nil)}
	mg.cloneEmptyInto(&out.base)
	return out
}

// Clone returns a deep copy of mg: vertices, edges, adjacency, and graph
// attributes.
// Complexity: O(V+E).
func (mg *Multi) Clone() *Multi {
	out := mg.CloneEmpty()
	mg.cloneEdgesInto(&out.base)
	return out
}
