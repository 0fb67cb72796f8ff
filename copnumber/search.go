package copnumber

import "github.com/samuelyvon/copper/cgraph"

// Search returns the smallest k in [1, kMax] for which DecideBound(g, k)
// holds, and whether that search succeeded. If no such k exists, it
// returns kMax+1 and false — the graph is "over-bound" for the requested
// maximum, mirroring original_source/src/main.c's cop_number, which prints
// "Over %d." and returns max_k + 1 in the same situation.
func Search(g *cgraph.Graph, kMax int) (k int, ok bool, err error) {
	for k = 1; k <= kMax; k++ {
		satisfied, err := DecideBound(g, k)
		if err != nil {
			return 0, false, err
		}
		if satisfied {
			return k, true, nil
		}
	}
	return kMax + 1, false, nil
}
