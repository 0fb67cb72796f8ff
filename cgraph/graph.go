// Package cgraph implements the dense adjacency-by-row graph representation
// used throughout copper: an undirected (optionally reflexive) graph stored
// as n rows of bitset.BitSet, plus its tensor (categorical) power, which
// lifts a graph to the k-tuple configuration space the cop-number decision
// runs over.
//
// Grounded on original_source/src/graph.c (new_graph, edge_get_and_set,
// neighbourhood, tensor_power, int_to_tuple, ipow) and, for the error/option
// shape, on the teacher's core/types.go (sentinel errors, functional
// GraphOption).
package cgraph

import (
	"errors"
	"fmt"

	"github.com/samuelyvon/copper/bitset"
)

// ErrVertexOutOfRange is returned when a vertex id falls outside [0, n).
var ErrVertexOutOfRange = errors.New("cgraph: vertex id out of range")

// ErrInvalidEdgeValue is returned when EdgeSet is asked to write a value
// other than 0 or 1.
var ErrInvalidEdgeValue = errors.New("cgraph: edge value must be 0 or 1")

// ErrTensorPowerTooLarge is returned by TensorPower when n^k would overflow
// the universe the BitSet arithmetic is built for.
var ErrTensorPowerTooLarge = errors.New("cgraph: tensor power exceeds representable universe")

// Graph is an undirected graph on n vertices, represented as n rows of
// bitset.BitSet over a universe of n. row[u].Get(v) == row[v].Get(u) is
// maintained as an invariant by every mutator in this package.
type Graph struct {
	n    int
	rows []*bitset.BitSet
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithReflexive sets every diagonal entry row[i].Get(i) to 1 at
// construction, modelling the "stay" move of a reflexive graph.
func WithReflexive() Option {
	return func(g *Graph) {
		for i := 0; i < g.n; i++ {
			g.rows[i].Set(uint32(i), 1)
		}
	}
}

// New allocates a graph on n vertices with all rows zeroed, then applies
// opts (e.g. WithReflexive()) in order.
func New(n int, opts ...Option) *Graph {
	g := &Graph{n: n, rows: make([]*bitset.BitSet, n)}
	for i := range g.rows {
		g.rows[i] = bitset.New(uint32(n))
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("cgraph: vertex %d not in [0,%d): %w", v, g.n, ErrVertexOutOfRange)
	}
	return nil
}

// EdgeSet atomically updates row[u][v] and row[v][u] to val (0 or 1) and
// returns the prior value of row[u][v]. val == -1 performs a read-only
// probe, returning the current value without mutating anything — the same
// contract as the original's edge_get_and_set(g, u, v, READ_ONLY).
func (g *Graph) EdgeSet(u, v int, val int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	if val != -1 && val != 0 && val != 1 {
		return 0, fmt.Errorf("cgraph: EdgeSet(%d,%d,%d): %w", u, v, val, ErrInvalidEdgeValue)
	}

	prev := g.rows[u].Set(uint32(v), -1)
	if val >= 0 {
		g.rows[u].Set(uint32(v), val)
		g.rows[v].Set(uint32(u), val)
	}
	return prev, nil
}

// EdgeGet reads row[u][v].
func (g *Graph) EdgeGet(u, v int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	return g.rows[u].Get(uint32(v)), nil
}

// Neighbourhood returns a fresh BitSet equal to the union of row[s] for
// every s in vertices. Since rows are reflexive when the graph is
// reflexive, this is the closed neighbourhood N[S].
func (g *Graph) Neighbourhood(vertices []int) (*bitset.BitSet, error) {
	out := bitset.New(uint32(g.n))
	for _, s := range vertices {
		if err := g.checkVertex(s); err != nil {
			return nil, err
		}
		out.UnionInto(g.rows[s])
	}
	return out, nil
}

// row exposes a graph's row directly, without going through the (u,v) pair
// API.
func (g *Graph) row(v int) *bitset.BitSet { return g.rows[v] }
