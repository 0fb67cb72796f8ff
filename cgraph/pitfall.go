package cgraph

import "github.com/samuelyvon/copper/bitset"

// HasPitfall reports whether g has a k-pitfall: a vertex u whose closed
// neighbourhood is covered by the union of some k of its neighbours' closed
// neighbourhoods. A pitfall vertex can be discarded by a robber-evasion
// argument without affecting c(G); nothing in copnumber consults this —
// it is not part of the cop_number pipeline in original_source/src/main.c
// either (graph_has_pitfall is defined there but never called from main).
// It is kept as a standalone diagnostic per spec.md §9 Q1.
//
// Grounded on original_source/src/graph.c's graph_has_pitfall.
func (g *Graph) HasPitfall(k int) bool {
	tuple := make([]int, k)

	for u := 0; u < g.n; u++ {
		neighs := g.rows[u].Indices()
		neighSz := len(neighs)
		covered := bitset.New(uint32(g.n))

		loops := ipow(neighSz, k)
		for i := 0; i < loops; i++ {
			covered.ClearAll()
			IntToTuple(k, neighSz, i, tuple)

			for _, idx := range tuple {
				neigh := int(neighs[idx])
				if neigh == u {
					continue
				}
				covered.UnionInto(g.rows[neigh])
			}

			candidate := g.rows[u].Clone()
			candidate.IntersectInto(covered)
			if candidate.Equals(g.rows[u]) {
				return true
			}
		}
	}

	return false
}
