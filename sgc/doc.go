// Package sgc implements the bridge to, and a concrete implementation of,
// the "simple-graph canonicalizer" (SGC) the specification treats as an
// external collaborator with a fixed calling convention (spec §6): given a
// zero-indexed vertex-colored simple graph in sparse adjacency form plus
// an ordered color partition, return a canonical labeling and a
// generating set for the automorphism group.
//
// The specification explicitly scopes the canonicalization algorithm
// itself out of diagcanon's concern ("implementations may use any
// equivalent routine"). This package supplies one: equitable color
// refinement (refine.go, grounded in the teacher's BFS worklist shape)
// followed by individualization-refinement backtracking search (search.go,
// grounded in the teacher's DFS recursive-backtracking shape), comparing
// each fully-individualized leaf's induced adjacency encoding to find the
// lexicographically smallest and collecting automorphism generators from
// every leaf that ties it.
//
// Callers outside this package should only need bridge.go's Request/Result
// types and Canonize; refine.go and search.go are implementation detail.
package sgc
