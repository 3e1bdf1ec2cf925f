// File: refine.go
// Role: equitable partition refinement, the standard preprocessing step
// before individualization search. Grounded in the teacher's BFS worklist
// shape (bfs/bfs.go): a work queue of "splitter" cells drives repeated
// passes over the partition until no cell can be split further, exactly
// as bfs.go drives repeated passes over a frontier until it is empty -
// generalized here from a vertex frontier to a color-cell frontier.
//
// Processing the smallest unstable cell first (rather than FIFO) tends to
// shrink the number of refinement passes, so the worklist is a priority
// queue ordered by cell size; this is exactly the kind of small generic
// container gopkg.in/dnaeon/go-priorityqueue.v1 (from the dnaeon-go-graph
// library in the retrieval pack) provides.

package sgc

import (
	priorityqueue "gopkg.in/dnaeon/go-priorityqueue.v1"
)

// cell is an ordered, deterministic group of vertex indices sharing the
// same refinement signature.
type cell []int

// cellKey encodes a cell as a byte string unique to its membership, the
// comparable key go-priorityqueue.v1 requires in place of the slice value
// itself (slices are never comparable).
func cellKey(c cell) string {
	buf := make([]byte, len(c)*4)
	for i, v := range c {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	return string(buf)
}

// refine repeatedly splits cells of part by neighbor-count-in-splitter
// signatures until the partition is equitable (stable under every current
// cell as a splitter). It never reorders cells relative to each other,
// only subdivides them in place, so the input ordering's cell-boundary
// semantics (e.g. host.VertexSortCondition's vertex-cells-before-edge-cells
// guarantee) survive refinement.
func refine(adj [][]bool, part []cell) []cell {
	cells := make([]cell, len(part))
	copy(cells, part)

	queue := priorityqueue.New[string, int64](priorityqueue.MinHeap)
	byKey := make(map[string]cell, len(cells))
	enqueue := func(c cell) {
		cp := append(cell(nil), c...)
		k := cellKey(cp)
		byKey[k] = cp
		queue.Put(k, int64(len(cp)))
	}
	for _, c := range cells {
		enqueue(c)
	}

	for !queue.IsEmpty() {
		item := queue.Get()
		splitter := byKey[item.Value]
		delete(byKey, item.Value)
		inSplitter := make(map[int]bool, len(splitter))
		for _, v := range splitter {
			inSplitter[v] = true
		}

		next := make([]cell, 0, len(cells))
		for _, c := range cells {
			groups := splitBySignature(c, adj, inSplitter)
			if len(groups) == 1 {
				next = append(next, c)
				continue
			}
			for _, g := range groups {
				next = append(next, g)
				if len(g) > 1 {
					enqueue(g)
				}
			}
		}
		cells = next
	}
	return cells
}

// splitBySignature groups c's members by how many splitter vertices each
// is adjacent to, returning the resulting sub-cells ordered ascending by
// signature (ties broken by the members' own ascending order, which c
// already carries since cells are always built and kept sorted).
func splitBySignature(c cell, adj [][]bool, inSplitter map[int]bool) []cell {
	sig := make(map[int]int, len(c))
	sigs := make([]int, 0, len(c))
	seen := make(map[int]bool)
	for _, v := range c {
		s := countNeighborsIn(v, adj, inSplitter)
		sig[v] = s
		if !seen[s] {
			seen[s] = true
			sigs = append(sigs, s)
		}
	}
	if len(sigs) <= 1 {
		return []cell{c}
	}
	sortInts(sigs)

	groups := make([]cell, 0, len(sigs))
	for _, s := range sigs {
		var g cell
		for _, v := range c {
			if sig[v] == s {
				g = append(g, v)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func countNeighborsIn(v int, adj [][]bool, set map[int]bool) int {
	n := 0
	for u := range set {
		if adj[v][u] {
			n++
		}
	}
	return n
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
