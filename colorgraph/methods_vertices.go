// File: methods_vertices.go
// Role: vertex lifecycle and query methods, shared by Simple and Multi via
// the embedded base. Complexity notes mirror core/methods.go.

package colorgraph

import (
	"sort"

	"github.com/katalvlaran/diagcanon/attrset"
)

// AddVertex inserts a vertex with the given ID and color. Re-adding an
// existing ID with an identical color is a no-op; a differing color
// returns ErrVertexExists.
// Complexity: O(1) amortized.
func (b *base) AddVertex(id string, color attrset.Set) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	b.muVert.Lock()
	defer b.muVert.Unlock()

	if existing, ok := b.vertices[id]; ok {
		if !existing.Color.Equal(color) {
			return ErrVertexExists
		}
		return nil
	}
	b.vertices[id] = &Vertex{ID: id, Color: color.Clone()}

	b.muEdgeAdj.Lock()
	if _, ok := b.adj[id]; !ok {
		b.adj[id] = make(map[string]map[string]struct{})
	}
	b.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (b *base) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	_, ok := b.vertices[id]
	return ok
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (b *base) Vertex(id string) (*Vertex, error) {
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	v, ok := b.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return &Vertex{ID: v.ID, Color: v.Color.Clone()}, nil
}

// Vertices returns every vertex ID in ascending order.
// Complexity: O(V log V).
func (b *base) Vertices() []string {
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	ids := make([]string, 0, len(b.vertices))
	for id := range b.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// VertexColor returns the color of the vertex with the given ID, or nil if
// no such vertex exists. The returned set is a copy; mutating it does not
// affect the graph.
// Complexity: O(1).
func (b *base) VertexColor(id string) attrset.Set {
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	v, ok := b.vertices[id]
	if !ok {
		return nil
	}
	return v.Color.Clone()
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (b *base) VertexCount() int {
	b.muVert.RLock()
	defer b.muVert.RUnlock()
	return len(b.vertices)
}

// RemoveVertex deletes the vertex and every incident edge.
// Complexity: O(deg(v) + M).
func (b *base) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	b.muVert.Lock()
	defer b.muVert.Unlock()
	b.muEdgeAdj.Lock()
	defer b.muEdgeAdj.Unlock()

	if _, ok := b.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range b.edges {
		if e.From == id || e.To == id {
			b.removeEdgeFromAdjLocked(eid, e)
			delete(b.edges, eid)
		}
	}
	delete(b.vertices, id)
	delete(b.adj, id)
	for _, nbrs := range b.adj {
		delete(nbrs, id)
	}
	return nil
}
