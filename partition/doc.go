// Package partition implements component A of diagcanon's pipeline: the
// color partition builder. Given the colors of a zero-indexed graph's
// vertices and an optional ordered list of sort conditions, it groups
// vertices into color cells and serializes them as the (lab, ptn) ordered
// partition the simple-graph canonicalizer (package sgc) expects.
//
// The sort-condition mechanism exists solely so that the multigraph
// driver (package canon) can force every original-vertex host-node color
// cell to sort before every edge-node color cell, keeping host-graph roles
// disjoint in the partition SGC receives (spec §4.1 Rationale).
package partition
