// Package colorgraph provides the colored (multi)graph data model that
// diagcanon's canonicalization pipeline operates on: Vertex and Edge carry
// an attrset.Set "color"; Simple forbids parallel edges, self-loops, and
// edge colors; Multi allows all three.
//
// This generalizes the teacher library's single configurable core.Graph
// (directed/weighted/multi/loop flags on one type) into two concrete
// types, because the specification treats "simple graph" and "multigraph"
// as structurally distinct inputs to different pipeline stages rather than
// as flag combinations of one type.
//
// Concurrency model (kept from core.Graph): muVert guards the vertex
// catalog, muEdgeAdj guards edges and adjacency; a monotonic atomic
// counter generates textual edge IDs ("e1", "e2", ...). Every graph in the
// canonicalization pipeline is immutable once produced: Clone/CloneEmpty
// are the only way to derive a new graph from an existing one, and no
// driver stage mutates its input (spec: Lifecycle).
package colorgraph
