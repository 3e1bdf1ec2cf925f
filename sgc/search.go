// File: search.go
// Role: individualization-refinement backtracking search over the
// equitable partitions refine.go produces, grounded in the teacher's
// recursive DFS backtracking shape (dfs/cycle.go): descend into a
// non-discrete partition by individualizing one vertex of its first
// non-singleton cell, refine, and recurse, backtracking across siblings
// exactly as cycle.go backtracks across a vertex's unvisited neighbors.
//
// The explicit stack used to drive the descent is backed by
// gopkg.in/dnaeon/go-deque.v1 (from the dnaeon-go-graph library in the
// retrieval pack), used here purely as a LIFO: Pop always takes the most
// recently Pushed frame, so the descent is depth-first, with the children
// of a node visited in reverse of the order they were pushed in.

package sgc

import (
	deque "gopkg.in/dnaeon/go-deque.v1"
)

// leaf is one fully-individualized (discrete) partition reached by the
// search, paired with its induced adjacency encoding.
type leaf struct {
	lab []int
	key string
}

// frame is one pending node of the search tree: a partial partition, not
// yet refined.
type frame struct {
	cells []cell
}

// firstNonSingleton returns the index of the first cell with len > 1, or
// -1 if the partition is discrete (every cell a singleton).
func firstNonSingleton(cells []cell) int {
	for i, c := range cells {
		if len(c) > 1 {
			return i
		}
	}
	return -1
}

// individualize returns a copy of cells with member v split out of cell
// index ci into its own singleton cell immediately preceding the
// remainder, the standard individualization step.
func individualize(cells []cell, ci, v int) []cell {
	out := make([]cell, 0, len(cells)+1)
	out = append(out, cells[:ci]...)
	rest := make(cell, 0, len(cells[ci])-1)
	for _, u := range cells[ci] {
		if u != v {
			rest = append(rest, u)
		}
	}
	out = append(out, cell{v})
	if len(rest) > 0 {
		out = append(out, rest)
	}
	out = append(out, cells[ci+1:]...)
	return out
}

// flattenLab reads off the one-line-notation labeling a discrete
// partition represents: lab[i] is the original vertex occupying
// position i.
func flattenLab(cells []cell) []int {
	lab := make([]int, 0, len(cells))
	for _, c := range cells {
		lab = append(lab, c[0])
	}
	return lab
}

// inducedKey encodes the adjacency matrix induced by visiting vertices in
// the order lab, as a byte string comparable with ordinary string
// comparison — the canonical-form comparison key.
func inducedKey(adj [][]bool, lab []int) string {
	n := len(lab)
	buf := make([]byte, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[lab[i]][lab[j]] {
				buf[i*n+j] = 1
			}
		}
	}
	return string(buf)
}

// searchLeaves exhaustively enumerates every discrete partition reachable
// by individualization-refinement from start, returning one leaf per
// branch taken. Exhaustive rather than pruned: the specification leaves
// the algorithm unconstrained, and diagcanon's host graphs are small
// enough that correctness-first exhaustive search is an acceptable
// choice given this package is never benchmarked.
func searchLeaves(adj [][]bool, start []cell) []leaf {
	var leaves []leaf

	stack := deque.New[frame]()
	stack.PushFront(frame{cells: start})

	for !stack.IsEmpty() {
		f, err := stack.PopFront()
		if err != nil {
			break
		}
		refined := refine(adj, f.cells)
		ci := firstNonSingleton(refined)
		if ci == -1 {
			lab := flattenLab(refined)
			leaves = append(leaves, leaf{lab: lab, key: inducedKey(adj, lab)})
			continue
		}
		target := append(cell(nil), refined[ci]...)
		for _, v := range target {
			stack.PushFront(frame{cells: individualize(refined, ci, v)})
		}
	}
	return leaves
}

// automorphismsFrom collects a generating set for Aut(G) from the leaves
// of an exhaustive search: the leaves tying the global minimum key are
// exactly the labelings isomorphic to the canonical form, and each
// combined with the canonical leaf's own labeling yields one automorphism
// sigma satisfying sigma(bestLab[i]) = leafLab[i] for all i.
func automorphismsFrom(leaves []leaf) (bestLab []int, auts [][]int) {
	if len(leaves) == 0 {
		return nil, nil
	}
	best := leaves[0]
	for _, l := range leaves[1:] {
		if l.key < best.key {
			best = l
		}
	}

	n := len(best.lab)

	seen := make(map[string]bool)
	for _, l := range leaves {
		if l.key != best.key {
			continue
		}
		sigma := make([]int, n)
		for i := 0; i < n; i++ {
			sigma[best.lab[i]] = l.lab[i]
		}
		identity := true
		for i := range sigma {
			if sigma[i] != i {
				identity = false
				break
			}
		}
		if identity {
			continue
		}
		k := permKey(sigma)
		if seen[k] {
			continue
		}
		seen[k] = true
		auts = append(auts, sigma)
	}
	return best.lab, auts
}

func permKey(p []int) string {
	buf := make([]byte, len(p)*4)
	for i, v := range p {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	return string(buf)
}
