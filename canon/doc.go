// Package canon implements drivers D, E and F: the public canonicalization
// entry points for vertex-colored simple graphs and vertex/edge-colored
// multigraphs built on top of colorgraph, partition, host and sgc.
//
// CanonizeSimple canonicalizes a colorgraph.Simple directly. CanonizeMulti
// canonicalizes a colorgraph.Multi by reducing it to a host graph (package
// host), canonicalizing the host, and restricting the result back to the
// original vertex set. CanonizeMultiWithHost is CanonizeMulti with the
// optional host-graph diagnostic (ported from the original implementation's
// hostgraphs parameter - see DESIGN.md).
//
// Every call is purely functional and single-threaded: no package-level
// mutable state, no retained references to the input graph, no context.Context
// parameter. This is a deliberate divergence from the teacher's flow and
// dijkstra packages, which accept context.Context for long-running search;
// canonicalization here is a CPU-bound computation with no cancellation
// points, matching the source specification's concurrency model exactly.
package canon
