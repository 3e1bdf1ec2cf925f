// Package host implements component B of diagcanon's pipeline: reducing a
// zero-indexed colored multigraph to a vertex-colored simple "host" graph
// that the simple-graph canonicalizer can consume directly.
//
// Every multigraph vertex becomes a host vertex tagged kind="vertex" with
// its original color; every multigraph edge becomes a fresh host vertex
// tagged kind="edge" with the edge's color, joined by two plain edges to
// the vertices it originally connected. Self-loops cannot be represented
// that way in a strictly simple graph (it would require a parallel edge
// between the edge-node and the single incident vertex), so each
// self-loop's edge-node is instead given one extra neighbor: an auxiliary
// host vertex tagged kind="loop-aux", carrying no other information. This
// keeps the edge-node at degree 2 like every other edge-node, keeps the
// host graph strictly simple, and preserves injectivity of the map from
// multigraph isomorphism classes to host isomorphism classes - resolving
// the open question in the source this package generalizes from, which
// instead produced an invalid doubled edge for self-loops.
package host
