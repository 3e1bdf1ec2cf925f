// File: builder.go
// Role: group vertices by color equality, rank cells by sort conditions,
// and serialize the result as (lab, ptn). Grounded on the teacher's
// deterministic-sort convention (core/methods_vertices.go always returns
// sorted results) generalized from vertex-ID sort to color-cell sort.

package partition

import (
	"sort"

	"github.com/katalvlaran/diagcanon/attrset"
)

// SortCondition imposes a priority among color cells: cells whose color
// matches (Key, Target) sort before cells that don't, with earlier
// conditions in the list taking precedence over later ones on ties.
type SortCondition struct {
	Key    string
	Target attrset.Value
}

// Partition is the serialized ordered partition SGC expects: Lab lists
// vertex indices cell-by-cell; Ptn marks cell boundaries with a trailing
// 0 (spec §6: "1 = same cell as next index, 0 = end of cell").
type Partition struct {
	Lab []int
	Ptn []int
}

type cell struct {
	color   attrset.Set
	members []int
	order   int
}

// Build groups the n vertices indexed by colors (colors[i] is vertex i's
// color) into color cells, ranks the cells by conds (spec §4.1 step 2),
// and serializes the result.
//
// Complexity: O(n log n).
func Build(colors []attrset.Set, conds []SortCondition) (Partition, error) {
	cellsByKey := make(map[string]*cell)
	order := make([]string, 0)
	for i, c := range colors {
		if c == nil {
			c = attrset.New(0)
		}
		key, err := c.Encode()
		if err != nil {
			return Partition{}, err
		}
		k := string(key)
		cl, ok := cellsByKey[k]
		if !ok {
			cl = &cell{color: c}
			cellsByKey[k] = cl
			order = append(order, k)
		}
		cl.members = append(cl.members, i)
	}

	cells := make([]*cell, 0, len(order))
	for _, k := range order {
		cl := cellsByKey[k]
		sort.Ints(cl.members)
		cl.order = cellOrder(cl.color, conds)
		cells = append(cells, cl)
	}

	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].order != cells[j].order {
			return cells[i].order < cells[j].order
		}
		return cells[i].color.Less(cells[j].color)
	})

	var p Partition
	for _, cl := range cells {
		for i, v := range cl.members {
			p.Lab = append(p.Lab, v)
			if i == len(cl.members)-1 {
				p.Ptn = append(p.Ptn, 0)
			} else {
				p.Ptn = append(p.Ptn, 1)
			}
		}
	}
	return p, nil
}

// cellOrder computes the bitmask described in spec §4.1 step 2: for n
// conditions c_0..c_{n-1}, condition c_i occupies bit position (n-1-i)
// from the LSB (so c_0 is the most significant bit, i.e. the highest
// priority), and is 0 when the cell's color matches c_i, 1 otherwise.
func cellOrder(color attrset.Set, conds []SortCondition) int {
	n := len(conds)
	order := 0
	for i, c := range conds {
		bitPos := n - 1 - i
		if !color.Matches(c.Key, c.Target) {
			order |= 1 << uint(bitPos)
		}
	}
	return order
}
