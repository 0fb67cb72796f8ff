package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelyvon/copper/graph6"
)

// TestDecodeTwoVertexEdge is scenario S1: "A_" decodes to n=2 with edge
// {0,1}.
func TestDecodeTwoVertexEdge(t *testing.T) {
	g, err := graph6.Decode("A_")
	require.NoError(t, err)
	require.Equal(t, 2, g.N())

	v, err := g.EdgeGet(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestDecodeFiveVertexGraph is scenario S2: "D?{" decodes to n=5 with the
// upper-triangle bits matching the graph6 payload byte-for-byte.
//
// "D?{" -63's to n=5 (single-byte header, 'D'-63) and payload bytes
// [0, 60]. Read MSB-first over the column-major pair order (0,1),(0,2),
// (1,2),(0,3),(1,3),(2,3),(0,4),(1,4),(2,4),(3,4): the first six bits
// (byte 0) are all zero, and 60 = 0b111100 sets the next four — so vertex
// 4 is joined to every one of 0,1,2,3 and no other pair is an edge (the
// star S4 centered on vertex 4).
func TestDecodeFiveVertexGraph(t *testing.T) {
	g, err := graph6.Decode("D?{")
	require.NoError(t, err)
	require.Equal(t, 5, g.N())

	want := map[[2]int]int{
		{0, 1}: 0, {0, 2}: 0, {0, 3}: 0, {0, 4}: 1,
		{1, 2}: 0, {1, 3}: 0, {1, 4}: 1,
		{2, 3}: 0, {2, 4}: 1,
		{3, 4}: 1,
	}
	for pair, want := range want {
		got, err := g.EdgeGet(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, want, got, "edge %v", pair)
	}
}

// TestDecodePetersen is part of scenario S3: "IsP@OkWHG" decodes to n=10
// with 15 edges (Petersen graph).
func TestDecodePetersen(t *testing.T) {
	g, err := graph6.Decode("IsP@OkWHG")
	require.NoError(t, err)
	require.Equal(t, 10, g.N())

	edges := 0
	for u := 0; u < 10; u++ {
		for v := u + 1; v < 10; v++ {
			e, err := g.EdgeGet(u, v)
			require.NoError(t, err)
			edges += e
		}
	}
	assert.Equal(t, 15, edges, "Petersen graph has 15 edges")

	// Petersen is 3-regular.
	for u := 0; u < 10; u++ {
		deg := 0
		for v := 0; v < 10; v++ {
			if v == u {
				continue
			}
			e, err := g.EdgeGet(u, v)
			require.NoError(t, err)
			deg += e
		}
		assert.Equal(t, 3, deg, "vertex %d should have degree 3", u)
	}
}

func TestDecodeStripsHeader(t *testing.T) {
	g, err := graph6.Decode(graph6.Header + "A_")
	require.NoError(t, err)
	assert.Equal(t, 2, g.N())
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	// 'I' (n=10) demands 45 edge bits = 8 bytes of payload; give it none.
	_, err := graph6.Decode("I")
	assert.ErrorIs(t, err, graph6.ErrMalformedGraph6)
}

func TestDecodeReflexive(t *testing.T) {
	g, err := graph6.Decode("A_")
	require.NoError(t, err)
	for i := 0; i < g.N(); i++ {
		v, err := g.EdgeGet(i, i)
		require.NoError(t, err)
		assert.Equal(t, 1, v, "decoded graphs are reflexive")
	}
}
