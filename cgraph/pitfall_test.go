package cgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelyvon/copper/cgraph"
)

// TestHasPitfallStar: in a star graph, every leaf's closed neighbourhood
// (leaf + center) is covered by the center's own closed neighbourhood
// alone, so a single-cop pitfall (k=1) must be detected.
func TestHasPitfallStar(t *testing.T) {
	n := 5
	g := cgraph.New(n, cgraph.WithReflexive())
	for leaf := 1; leaf < n; leaf++ {
		_, err := g.EdgeSet(0, leaf, 1)
		require.NoError(t, err)
	}

	assert.True(t, g.HasPitfall(1))
}

// TestHasPitfallTriangle: in K3 every vertex's closed neighbourhood is the
// whole graph, which any single other vertex's closed neighbourhood already
// covers, so a 1-pitfall must be detected.
func TestHasPitfallTriangle(t *testing.T) {
	g := cgraph.New(3, cgraph.WithReflexive())
	for u := 0; u < 3; u++ {
		for v := u + 1; v < 3; v++ {
			_, err := g.EdgeSet(u, v, 1)
			require.NoError(t, err)
		}
	}
	// Any single neighbour of u is itself adjacent to the third vertex,
	// so together with reflexivity it already covers u's whole
	// neighbourhood in K3 — this is in fact a pitfall at k=1.
	assert.True(t, g.HasPitfall(1))
}
