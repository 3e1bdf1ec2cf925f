// Package diagcanon canonicalizes vertex- and edge-colored multigraphs —
// the adjacency shape behind Feynman-diagram-style symbolic manipulation —
// so that isomorphic diagrams compare, hash, and deduplicate identically
// regardless of how their vertices happen to be labeled.
//
// Given a colored graph, diagcanon produces:
//
//	  • a canonical isomorph, a fixed representative of the graph's
//	    isomorphism class under color-respecting relabeling
//	  • a canonical map, the relabeling that takes that isomorph back to
//	    the input (its inverse takes the input to the isomorph)
//	  • a generating set for the automorphism group, the relabelings
//	    that leave the input fixed
//
// The work is organized under dedicated subpackages:
//
//	attrset/    — hashable, ordered vertex/edge color attributes
//	colorgraph/ — the Simple and Multi colored-graph data types
//	partition/  — deterministic initial color partitioning
//	host/       — multigraph-to-simple-graph host embedding
//	sgc/        — the simple-graph canonicalizer (equitable refinement +
//	              individualization-refinement backtracking search)
//	canon/      — the public drivers: CanonizeSimple, CanonizeMulti, and
//	              the standardized encoding used to compare results
//
// canon is the entry point most callers want; the other packages are its
// building blocks, each independently grounded and tested.
package diagcanon
