// File: standard.go
// Role: component F, standardized graph encoding (spec §4.4). Grounded in
// the teacher's preference for hand-rolled deterministic byte encodings
// over reflection-based marshaling (matrix's dense row encodings,
// attrset.Set.Encode in this module), generalized to whole graphs.

package canon

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/katalvlaran/diagcanon/colorgraph"
)

// StandardizeSimple returns a deep copy of g; every pipeline stage returns
// a fresh value rather than mutating its input (spec §5).
func StandardizeSimple(g *colorgraph.Simple) *colorgraph.Simple {
	return g.Clone()
}

// StandardizeMulti returns a copy of mg with parallel edges reinserted in
// ascending (min endpoint, max endpoint, color encoding) order (spec
// §4.3.2 step 7: "re-key parallel edges... reinsert the edges with
// sequential integer keys in that order"). Reinserting through AddEdge in
// this order makes the fresh copy's own edge-ID sequence reflect the
// canonical order, which is a convenience for callers inspecting the
// returned graph directly; EncodeMulti does not depend on it; it derives
// the same order independently from endpoints and color.
func StandardizeMulti(mg *colorgraph.Multi) *colorgraph.Multi {
	out := mg.CloneEmpty()
	for _, e := range sortedMultiEdges(mg) {
		if _, err := out.AddEdge(e.From, e.To, e.Color); err != nil {
			// Every vertex already exists (CloneEmpty copied them) and the
			// edge is a copy of one already valid in mg, so this cannot fail.
			panic(err)
		}
	}
	return out
}

// sortedMultiEdges returns mg's edges ordered by (min endpoint, max
// endpoint, color encoding) - the order component F and the multigraph
// driver's parallel-edge re-keying both rely on.
func sortedMultiEdges(mg *colorgraph.Multi) []*colorgraph.Edge {
	edges := mg.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		amin, amax := minmax(edges[i].From, edges[i].To)
		bmin, bmax := minmax(edges[j].From, edges[j].To)
		if amin != bmin {
			return amin < bmin
		}
		if amax != bmax {
			return amax < bmax
		}
		ac, _ := edges[i].Color.Encode()
		bc, _ := edges[j].Color.Encode()
		return bytes.Compare(ac, bc) < 0
	})
	return edges
}

// EncodeSimple produces g's canonical byte encoding: component F's
// contract (std(std(G))=std(G), iteration-order independent, injective on
// graph value). Deliberately omits internal edge-ID strings - those are an
// implementation detail of colorgraph, not an isomorphism invariant.
func EncodeSimple(g *colorgraph.Simple) []byte {
	var buf bytes.Buffer
	attrs, _ := g.Attrs.Encode()
	buf.WriteString("G")
	buf.Write(attrs)

	buf.WriteString(";V:")
	for _, id := range g.Vertices() {
		enc, _ := g.VertexColor(id).Encode()
		buf.WriteString(strconv.Quote(id))
		buf.WriteByte(':')
		buf.Write(enc)
		buf.WriteByte(';')
	}

	buf.WriteString("E:")
	for _, e := range g.Edges() {
		a, b := minmax(e.From, e.To)
		buf.WriteString(strconv.Quote(a))
		buf.WriteByte(',')
		buf.WriteString(strconv.Quote(b))
		buf.WriteByte(';')
	}
	return buf.Bytes()
}

// EncodeMulti is EncodeSimple's analogue for multigraphs: parallel edges
// between the same pair are emitted in ascending color-encoding order
// (the "parallel_key" of spec §4.4), so two multigraphs differing only in
// which of several identically-endpointed edges was inserted first still
// encode identically.
func EncodeMulti(mg *colorgraph.Multi) []byte {
	var buf bytes.Buffer
	attrs, _ := mg.Attrs.Encode()
	buf.WriteString("G")
	buf.Write(attrs)

	buf.WriteString(";V:")
	for _, id := range mg.Vertices() {
		enc, _ := mg.VertexColor(id).Encode()
		buf.WriteString(strconv.Quote(id))
		buf.WriteByte(':')
		buf.Write(enc)
		buf.WriteByte(';')
	}

	buf.WriteString("E:")
	for _, e := range sortedMultiEdges(mg) {
		a, b := minmax(e.From, e.To)
		enc, _ := e.Color.Encode()
		buf.WriteString(strconv.Quote(a))
		buf.WriteByte(',')
		buf.WriteString(strconv.Quote(b))
		buf.WriteByte(':')
		buf.Write(enc)
		buf.WriteByte(';')
	}
	return buf.Bytes()
}
