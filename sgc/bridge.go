// File: bridge.go
// Role: component C. Marshal/unmarshal the sparse-adjacency + lab/ptn
// calling convention described in spec §6, and expose the adjacency
// matrix the rest of this package's algorithms operate on.

package sgc

// Request mirrors the SGC calling convention's inputs exactly (spec §6).
type Request struct {
	Nv  int // number of vertices
	Nde int // 2 * |E|
	V   []int // V[i] = offset into E of vertex i's neighbor list, len Nv
	D   []int // D[i] = degree of vertex i, len Nv
	E   []int // neighbor list, len Nde
	Lab []int // initial labeling, len Nv
	Ptn []int // 1 = same cell as next index, 0 = end of cell, len Nv
}

// Result mirrors the SGC calling convention's outputs (spec §6).
type Result struct {
	// LabOut is the canonical labeling in one-line notation: LabOut[i] is
	// the original-indexed vertex that takes position i in the canonical
	// order.
	LabOut []int

	// Auts is a generating set for Aut(G); each row is a permutation of
	// [0,Nv) in one-line notation.
	Auts [][]int
}

// validate checks the §6 invariants this package relies on.
func (r Request) validate() error {
	if len(r.Lab) != r.Nv || len(r.D) != r.Nv || len(r.V) != r.Nv {
		return ErrMalformedRequest
	}
	if len(r.E) != r.Nde {
		return ErrMalformedRequest
	}
	if len(r.Ptn) != r.Nv {
		return ErrMalformedRequest
	}
	if r.Nv > 0 && r.Ptn[r.Nv-1] != 0 {
		return ErrMalformedRequest
	}
	return nil
}

// adjacencyMatrix builds the dense nv x nv symmetric adjacency matrix from
// the sparse (v,d,e) triple. diagcanon's host graphs are always simple, so
// no self-loops or parallel edges are expected on input; this is O(nv^2)
// and only ever invoked on the modest host graphs diagcanon produces.
func adjacencyMatrix(r Request) [][]bool {
	adj := make([][]bool, r.Nv)
	for i := range adj {
		adj[i] = make([]bool, r.Nv)
	}
	for i := 0; i < r.Nv; i++ {
		start := r.V[i]
		for k := 0; k < r.D[i]; k++ {
			j := r.E[start+k]
			adj[i][j] = true
			adj[j][i] = true
		}
	}
	return adj
}

// decodePartition splits (lab, ptn) into an ordered sequence of cells.
func decodePartition(lab, ptn []int) []cell {
	var cells []cell
	var cur cell
	for i, v := range lab {
		cur = append(cur, v)
		if ptn[i] == 0 {
			cells = append(cells, cur)
			cur = nil
		}
	}
	return cells
}
