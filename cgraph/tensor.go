package cgraph

import (
	"fmt"
	"math"
)

// ipow computes a^e for nonnegative e, matching original_source/src/graph.c's
// ipow (exponentiation by squaring over unsigned ints).
func ipow(a, e int) int {
	r := 1
	for {
		if e&1 == 1 {
			r *= a
		}
		e >>= 1
		if e == 0 {
			break
		}
		a *= a
	}
	return r
}

// TupleToInt encodes a k-tuple of G-vertices as the big-endian base-n
// integer i = sum(tuple[j] * n^(k-1-j)).
func TupleToInt(tuple []int, n int) int {
	r := 0
	for _, a := range tuple {
		r = r*n + a
	}
	return r
}

// IntToTuple decodes r into a k-wide tuple of base-n digits, writing into
// (and returning) the caller-supplied scratch slice, which must have length
// k. This mirrors original_source/src/graph.c's int_to_tuple, which takes a
// pre-sized scratch array so the tensor-power construction and the decider
// avoid per-call allocation.
func IntToTuple(k, n, r int, scratch []int) []int {
	for i := 0; i < k; i++ {
		if r > 0 {
			d := ipow(n, k-i-1)
			scratch[i] = r / d
			r -= scratch[i] * d
		} else {
			scratch[i] = 0
		}
	}
	return scratch
}

// TensorPower returns H = G^k, the categorical (tensor) power of g: a
// reflexive graph on n^k vertices, where vertex i decodes (via IntToTuple)
// to a tuple a, vertex j to a tuple b, and edge(i,j) holds iff i == j or
// every component pair (a[c], b[c]) is adjacent in g.
//
// Because g is reflexive when asked for via WithReflexive, a[c] == b[c]
// always satisfies the component-adjacency test (self-loop), so H captures
// exactly the tuples where "every cop either stays or steps along an edge."
//
// Complexity: O(N^2 * k) where N = n^k; practical only for small k (the
// caller is expected to bound k, per spec.md's size note).
func (g *Graph) TensorPower(k int) (*Graph, error) {
	n := g.n
	if k <= 0 {
		return nil, fmt.Errorf("cgraph: TensorPower: k=%d must be positive", k)
	}
	bigN := 1
	for i := 0; i < k; i++ {
		next := bigN * n
		if (n != 0 && next/n != bigN) || uint64(next) > math.MaxUint32 {
			return nil, ErrTensorPowerTooLarge
		}
		bigN = next
	}

	h := New(bigN, WithReflexive())

	a := make([]int, k)
	b := make([]int, k)
	for i := 0; i < bigN; i++ {
		for j := i + 1; j < bigN; j++ {
			IntToTuple(k, n, i, a)
			IntToTuple(k, n, j, b)

			edge := 1
			for c := 0; c < k && edge == 1; c++ {
				v, err := g.EdgeGet(a[c], b[c])
				if err != nil {
					return nil, err
				}
				edge = v
			}
			if _, err := h.EdgeSet(i, j, edge); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}
