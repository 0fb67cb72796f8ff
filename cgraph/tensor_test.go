package cgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelyvon/copper/cgraph"
)

// buildTriangle returns the reflexive triangle graph K3.
func buildTriangle(t *testing.T) *cgraph.Graph {
	t.Helper()
	g := cgraph.New(3, cgraph.WithReflexive())
	for u := 0; u < 3; u++ {
		for v := u + 1; v < 3; v++ {
			_, err := g.EdgeSet(u, v, 1)
			require.NoError(t, err)
		}
	}
	return g
}

// TestTensorPowerEdgeDefinition checks P4: edge_H(i,j) = (i==j) or every
// component pair is adjacent in G, for all pairs of the k=2 tensor power
// of K3.
func TestTensorPowerEdgeDefinition(t *testing.T) {
	g := buildTriangle(t)
	k := 2
	h, err := g.TensorPower(k)
	require.NoError(t, err)
	require.Equal(t, 9, h.N())

	scratchA := make([]int, k)
	scratchB := make([]int, k)
	for i := 0; i < h.N(); i++ {
		for j := 0; j < h.N(); j++ {
			a := cgraph.IntToTuple(k, g.N(), i, scratchA)
			b := cgraph.IntToTuple(k, g.N(), j, scratchB)

			want := i == j
			if !want {
				want = true
				for c := 0; c < k; c++ {
					ev, err := g.EdgeGet(a[c], b[c])
					require.NoError(t, err)
					if ev == 0 {
						want = false
						break
					}
				}
			}

			got, err := h.EdgeGet(i, j)
			require.NoError(t, err)
			if want {
				require.Equal(t, 1, got, "expected edge between tuples %v and %v", a, b)
			} else {
				require.Equal(t, 0, got, "expected no edge between tuples %v and %v", a, b)
			}
		}
	}
}

func TestTensorPowerRejectsNonPositiveK(t *testing.T) {
	g := cgraph.New(2)
	_, err := g.TensorPower(0)
	require.Error(t, err)
}
