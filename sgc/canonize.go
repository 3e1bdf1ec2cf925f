// File: canonize.go
// Role: ties bridge.go, refine.go and search.go together behind the
// single entry point the canon package drivers call.

package sgc

// Canonize computes a canonical labeling and an automorphism-group
// generating set for the simple, vertex-partitioned graph described by
// req, per the §6 calling convention.
func Canonize(req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	if req.Nv == 0 {
		return Result{LabOut: []int{}, Auts: nil}, nil
	}

	adj := adjacencyMatrix(req)
	start := decodePartition(req.Lab, req.Ptn)

	leaves := searchLeaves(adj, start)
	lab, auts := automorphismsFrom(leaves)

	return Result{LabOut: lab, Auts: auts}, nil
}
