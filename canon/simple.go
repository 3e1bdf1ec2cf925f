// File: simple.go
// Role: driver D, the public simple-graph canonicalization entry point
// (spec §4.3.1), built on zindex.go's shared plumbing.

package canon

import (
	"fmt"

	"github.com/katalvlaran/diagcanon/colorgraph"
	"github.com/katalvlaran/diagcanon/partition"
)

// CanonizeSimple computes the canonical isomorph of g, a generating set
// for Aut(g), and the canonical map, per spec §4.3.1.
//
// sort conditions let callers force color cells matching a given
// (key, value) pair to sort ahead of cells that don't; CanonizeMulti uses
// this internally to keep host-graph vertex and edge node roles disjoint
// (§4.3.2 step 3) but any caller may supply its own.
func CanonizeSimple(g *colorgraph.Simple, conds ...partition.SortCondition) (*colorgraph.Simple, []Automorphism, CanonicalMap, error) {
	if g.VertexCount() == 0 {
		return colorgraph.NewSimple(), nil, CanonicalMap{}, nil
	}

	gz, alpha, alphaInv, err := zindexSimple(g)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeSimple: zero-indexing: %w", ErrInvalidVertex)
	}

	labOut, autsZ, err := canonicalizeZeroIndexed(gz, conds)
	if err != nil {
		return nil, nil, nil, err
	}

	n := len(alphaInv)

	// Step 6: canonical_map[x] = alpha^-1(can_z(alpha(x))), where
	// can_z(i) = labOut[i] (spec §4.3.1 step 5).
	canonicalMap := make(CanonicalMap, n)
	for x, idx := range alpha {
		canonicalMap[x] = alphaInv[labOut[idx]]
	}

	invCanonicalMap, err := invertStringMap(canonicalMap)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeSimple: canonical map: %w", err)
	}

	// Step 7: produce G_c by relabeling G through inv_canonical_map, then
	// standardize.
	gc, err := relabelSimple(g, invCanonicalMap)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeSimple: relabel: %w", ErrInternal)
	}
	gc = StandardizeSimple(gc)

	// Lift each automorphism generator through alpha the same way.
	auts := make([]Automorphism, 0, len(autsZ))
	for _, sigma := range autsZ {
		a := make(Automorphism, n)
		for x, idx := range alpha {
			a[x] = alphaInv[sigma[idx]]
		}
		auts = append(auts, a)
	}

	return gc, auts, canonicalMap, nil
}
