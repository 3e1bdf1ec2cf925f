// File: zindex.go
// Role: shared zero-indexing, relabeling, and encoding plumbing used by
// both simple.go (driver D) and multi.go (driver E). Grounded in the
// teacher's convention of small, private helper files backing a public
// api.go (core/methods_clone.go plays the analogous role for Clone).

package canon

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/diagcanon/attrset"
	"github.com/katalvlaran/diagcanon/colorgraph"
	"github.com/katalvlaran/diagcanon/partition"
	"github.com/katalvlaran/diagcanon/sgc"
)

// Automorphism is one generator of Aut(G): a bijection on G's own vertex
// labels (spec §4.3.1: "autgens is a list of generator bijections on G's
// vertex labels").
type Automorphism map[string]string

// CanonicalMap is the bijection of spec §4.3.1 step 6: relabeling the
// canonical isomorph by CanonicalMap yields a graph encoding-equal
// (component F) to the original input.
type CanonicalMap map[string]string

// zindexSimple maps g's vertex IDs to [0,n) in ascending order (spec
// §4.3.1 step 1: "alpha: input_label -> [0,n) as the ascending-order
// enumeration of input identifiers"), returning the relabeled graph plus
// alpha and its inverse.
func zindexSimple(g *colorgraph.Simple) (gz *colorgraph.Simple, alpha map[string]int, alphaInv []string, err error) {
	ids := g.Vertices()
	alpha = make(map[string]int, len(ids))
	alphaInv = make([]string, len(ids))
	f := make(map[string]string, len(ids))
	for i, id := range ids {
		alpha[id] = i
		alphaInv[i] = id
		f[id] = strconv.Itoa(i)
	}
	gz, err = relabelSimple(g, f)
	return gz, alpha, alphaInv, err
}

// zindexMulti is zindexSimple's analogue for multigraphs.
func zindexMulti(mg *colorgraph.Multi) (mgz *colorgraph.Multi, alpha map[string]int, alphaInv []string, err error) {
	ids := mg.Vertices()
	alpha = make(map[string]int, len(ids))
	alphaInv = make([]string, len(ids))
	f := make(map[string]string, len(ids))
	for i, id := range ids {
		alpha[id] = i
		alphaInv[i] = id
		f[id] = strconv.Itoa(i)
	}
	mgz, err = relabelMulti(mg, f)
	return mgz, alpha, alphaInv, err
}

// relabelSimple returns a new Simple graph with every vertex ID id renamed
// to f[id]; f must be defined on every vertex of g.
func relabelSimple(g *colorgraph.Simple, f map[string]string) (*colorgraph.Simple, error) {
	out := colorgraph.NewSimple(colorgraph.WithGraphAttrs(g.Attrs.Clone()))
	for _, id := range g.Vertices() {
		nid, ok := f[id]
		if !ok {
			return nil, fmt.Errorf("relabelSimple: no image for vertex %q: %w", id, ErrInternal)
		}
		if err := out.AddVertex(nid, g.VertexColor(id)); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if _, err := out.AddEdge(f[e.From], f[e.To]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// relabelMulti is relabelSimple's analogue for multigraphs; edge colors and
// self-loops/parallel edges survive the relabeling unchanged.
func relabelMulti(mg *colorgraph.Multi, f map[string]string) (*colorgraph.Multi, error) {
	out := colorgraph.NewMulti(colorgraph.WithGraphAttrs(mg.Attrs.Clone()))
	for _, id := range mg.Vertices() {
		nid, ok := f[id]
		if !ok {
			return nil, fmt.Errorf("relabelMulti: no image for vertex %q: %w", id, ErrInternal)
		}
		if err := out.AddVertex(nid, mg.VertexColor(id)); err != nil {
			return nil, err
		}
	}
	for _, e := range mg.Edges() {
		if _, err := out.AddEdge(f[e.From], f[e.To], e.Color); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// invertStringMap inverts a bijection; a non-injective input is reported as
// ErrInternal since every map this package inverts is expected to already
// be a bijection by construction.
func invertStringMap(m map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if _, dup := out[v]; dup {
			return nil, fmt.Errorf("invertStringMap: %q is not injective: %w", v, ErrInternal)
		}
		out[v] = k
	}
	return out, nil
}

// sparseAdjacency builds the §6 (v,d,e) triple for a zero-indexed Simple
// graph on n vertices ("0".."n-1").
func sparseAdjacency(gz *colorgraph.Simple, n int) (v, d, e []int) {
	nbrs := make([][]int, n)
	for _, edge := range gz.Edges() {
		a, _ := strconv.Atoi(edge.From)
		b, _ := strconv.Atoi(edge.To)
		nbrs[a] = append(nbrs[a], b)
		nbrs[b] = append(nbrs[b], a)
	}
	v = make([]int, n)
	d = make([]int, n)
	off := 0
	for i := 0; i < n; i++ {
		v[i] = off
		d[i] = len(nbrs[i])
		e = append(e, nbrs[i]...)
		off += len(nbrs[i])
	}
	return v, d, e
}

// canonicalizeZeroIndexed runs §4.1 (partition) and §4.5/§6 (SGC) on a
// zero-indexed Simple graph, without lifting the result back through any
// alpha. This is the "simple-graph driver internals" spec §4.3.2 step 3
// refers to: both CanonizeSimple (driver D) and the multigraph driver's
// host-graph canonicalization step call it, each performing its own lift
// afterwards.
func canonicalizeZeroIndexed(gz *colorgraph.Simple, conds []partition.SortCondition) (labOut []int, auts [][]int, err error) {
	n := gz.VertexCount()
	colors := make([]attrset.Set, n)
	for i := 0; i < n; i++ {
		colors[i] = gz.VertexColor(strconv.Itoa(i))
	}
	part, err := partition.Build(colors, conds)
	if err != nil {
		return nil, nil, fmt.Errorf("canonicalizeZeroIndexed: partition.Build: %w", ErrInvalidAttribute)
	}

	v, d, e := sparseAdjacency(gz, n)
	req := sgc.Request{Nv: n, Nde: len(e), V: v, D: d, E: e, Lab: part.Lab, Ptn: part.Ptn}
	res, err := sgc.Canonize(req)
	if err != nil {
		return nil, nil, fmt.Errorf("canonicalizeZeroIndexed: sgc.Canonize: %w: %w", ErrSGCFailure, err)
	}
	return res.LabOut, res.Auts, nil
}

// isIdentityPerm reports whether p fixes every index.
func isIdentityPerm(p []int) bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// permKey returns a comparable key for deduping equal permutations.
func permKey(p []int) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	b := make([]byte, 0, len(p)*4)
	for _, s := range parts {
		b = append(b, s...)
		b = append(b, ',')
	}
	return string(b)
}

// minmax returns a and b in ascending order.
func minmax(a, b string) (string, string) {
	if a <= b {
		return a, b
	}
	return b, a
}
