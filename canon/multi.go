// File: multi.go
// Role: driver E, the public multigraph canonicalization entry point
// (spec §4.3.2): standardize and zero-index the input, embed it as a host
// graph (package host), canonicalize the host via the same internals
// driver D uses, restrict the result back to the original vertex set, and
// re-key parallel edges.

package canon

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/diagcanon/colorgraph"
	"github.com/katalvlaran/diagcanon/host"
	"github.com/katalvlaran/diagcanon/partition"
)

// HostDiagnostic is the out_host diagnostic parameter from spec §6, ported
// from hostgraphs in the original implementation's canonize_multigraph and
// restored here (dropped by the spec's distillation, but a real documented
// feature and not excluded by any Non-goal - see DESIGN.md). Host is the
// pre-canonicalization host graph; HostCanonical is its canonical form.
type HostDiagnostic struct {
	Host          *colorgraph.Simple
	HostCanonical *colorgraph.Simple
}

// CanonizeMulti computes the canonical isomorph of mg, a generating set
// for Aut(mg), and the canonical map, per spec §4.3.2.
func CanonizeMulti(mg *colorgraph.Multi, conds ...partition.SortCondition) (*colorgraph.Multi, []Automorphism, CanonicalMap, error) {
	return canonizeMulti(mg, nil, conds...)
}

// CanonizeMultiWithHost is CanonizeMulti, additionally populating diag with
// the host graph built during canonicalization and its canonical form.
func CanonizeMultiWithHost(mg *colorgraph.Multi, diag *HostDiagnostic, conds ...partition.SortCondition) (*colorgraph.Multi, []Automorphism, CanonicalMap, error) {
	return canonizeMulti(mg, diag, conds...)
}

func canonizeMulti(mg *colorgraph.Multi, diag *HostDiagnostic, conds ...partition.SortCondition) (*colorgraph.Multi, []Automorphism, CanonicalMap, error) {
	// Step 1: standardize and zero-index the input multigraph.
	mgStd := StandardizeMulti(mg)
	if mgStd.VertexCount() == 0 {
		return colorgraph.NewMulti(), nil, CanonicalMap{}, nil
	}

	mgz, alpha, alphaInv, err := zindexMulti(mgStd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeMulti: zero-indexing: %w", ErrInvalidVertex)
	}
	n := len(alphaInv)

	// Step 2: produce the host graph H.
	H, err := host.Embed(mgz)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeMulti: host.Embed: %w", ErrInternal)
	}
	if diag != nil {
		diag.Host = H.Clone()
	}

	// Step 3: invoke the simple-graph driver internals on H, with
	// [("kind","vertex")] ++ user sort conditions prepended.
	hostConds := make([]partition.SortCondition, 0, len(conds)+1)
	hostConds = append(hostConds, host.VertexSortCondition)
	hostConds = append(hostConds, conds...)

	// H's IDs are already exactly "0".."nH-1" in ascending numeric order
	// by construction (host.Embed numbers vertex nodes then edge/loop-aux
	// nodes sequentially), so H is already the zero-indexed domain
	// canonicalizeZeroIndexed expects - no re-zero-indexing needed. Doing
	// so via zindexSimple's lexicographic Vertices() sort would in fact be
	// wrong once nH reaches double digits ("10" sorts before "2").
	labOutH, autsH, err := canonicalizeZeroIndexed(H, hostConds)
	if err != nil {
		return nil, nil, nil, err
	}

	nH := H.VertexCount()
	hostCanonicalMap := make(map[string]string, nH)
	for i := 0; i < nH; i++ {
		x := strconv.Itoa(i)
		hostCanonicalMap[x] = strconv.Itoa(labOutH[i])
	}

	if diag != nil {
		if invHostCM, ierr := invertStringMap(hostCanonicalMap); ierr == nil {
			if hc, rerr := relabelSimple(H, invHostCM); rerr == nil {
				diag.HostCanonical = StandardizeSimple(hc)
			}
		}
	}

	// Step 4: restrict the host-graph canonical map to the first n labels.
	restricted := make(map[int]int, n) // zero-indexed mg vertex -> zero-indexed mg vertex
	for i := 0; i < n; i++ {
		x := strconv.Itoa(i)
		y, ok := hostCanonicalMap[x]
		if !ok {
			return nil, nil, nil, fmt.Errorf("CanonizeMulti: host canonical map missing vertex node %q: %w", x, ErrInternal)
		}
		yi, perr := strconv.Atoi(y)
		if perr != nil || yi < 0 || yi >= n {
			return nil, nil, nil, fmt.Errorf("CanonizeMulti: restricted canonical map escaped the vertex cell: %w", ErrInternal)
		}
		restricted[i] = yi
	}

	// Step 5: restrict each host-graph automorphism generator the same way,
	// deduping after restriction (distinct host automorphisms can restrict
	// to the same, or to the identity, permutation of the original vertices).
	seen := map[string]bool{}
	var restrictedAuts [][]int
	for _, sigmaH := range autsH {
		r := make([]int, n)
		for i := 0; i < n; i++ {
			img := sigmaH[i]
			if img < 0 || img >= n {
				return nil, nil, nil, fmt.Errorf("CanonizeMulti: restricted automorphism escaped the vertex cell: %w", ErrInternal)
			}
			r[i] = img
		}
		if isIdentityPerm(r) {
			continue
		}
		k := permKey(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		restrictedAuts = append(restrictedAuts, r)
	}

	// Step 6: lift the restricted canonical map (and automorphisms) back to
	// mgStd's own vertex domain through alpha, mirroring CanonizeSimple's lift.
	canonicalMap := make(CanonicalMap, n)
	for x, idx := range alpha {
		canonicalMap[x] = alphaInv[restricted[idx]]
	}
	invCanonicalMap, err := invertStringMap(canonicalMap)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeMulti: canonical map: %w", err)
	}

	mgc, err := relabelMulti(mgStd, invCanonicalMap)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CanonizeMulti: relabel: %w", ErrInternal)
	}
	// Steps 7-8: re-key parallel edges and standardize.
	mgc = StandardizeMulti(mgc)

	auts := make([]Automorphism, 0, len(restrictedAuts))
	for _, r := range restrictedAuts {
		a := make(Automorphism, n)
		for x, idx := range alpha {
			a[x] = alphaInv[r[idx]]
		}
		auts = append(auts, a)
	}

	return mgc, auts, canonicalMap, nil
}
