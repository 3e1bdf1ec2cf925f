// File: embed.go
// Role: the host-graph embedding construction (spec §4.2), grounded in the
// pack's standing convention for graph-representation converters
// (graph/conversions.go, matrix/conversions.go).

package host

import (
	"strconv"

	"github.com/katalvlaran/diagcanon/attrset"
	"github.com/katalvlaran/diagcanon/colorgraph"
	"github.com/katalvlaran/diagcanon/partition"
)

// KindKey and the three reserved Kind values tag host vertices so that a
// caller can later tell original-vertex nodes from edge nodes and loop
// auxiliaries apart; see Embed.
const (
	KindKey = "kind"
)

var (
	kindVertex  = attrset.String("vertex")
	kindEdge    = attrset.String("edge")
	kindLoopAux = attrset.String("loop-aux")
)

// VertexSortCondition is the sort condition the multigraph driver (package
// canon) prepends to the user's own sort conditions so that every
// original-vertex host node sorts before every edge/loop-aux host node
// (spec §4.3.2 step 3).
var VertexSortCondition = partition.SortCondition{Key: KindKey, Target: kindVertex}

// Embed reduces mg, assumed zero-indexed with vertex IDs "0".."n-1", to its
// host graph: n original-vertex nodes (in numeric order) followed by one
// node per multigraph edge in mg.Edges() order, self-loops additionally
// contributing one loop-aux node each.
//
// Complexity: O(V+E).
func Embed(mg *colorgraph.Multi) (*colorgraph.Simple, error) {
	n := mg.VertexCount()
	g := colorgraph.NewSimple(colorgraph.WithGraphAttrs(mg.Attrs.Clone()))

	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		color := mg.VertexColor(id)
		if color == nil {
			color = attrset.New(0)
		}
		if err := g.AddVertex(id, color.With(KindKey, kindVertex)); err != nil {
			return nil, err
		}
	}

	next := n
	for _, e := range mg.Edges() {
		edgeID := strconv.Itoa(next)
		next++
		color := e.Color
		if color == nil {
			color = attrset.New(0)
		}
		if err := g.AddVertex(edgeID, color.With(KindKey, kindEdge)); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(edgeID, e.From); err != nil {
			return nil, err
		}
		if e.From == e.To {
			auxID := strconv.Itoa(next)
			next++
			if err := g.AddVertex(auxID, attrset.Set{KindKey: kindLoopAux}); err != nil {
				return nil, err
			}
			if _, err := g.AddEdge(edgeID, auxID); err != nil {
				return nil, err
			}
		} else {
			if _, err := g.AddEdge(edgeID, e.To); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
