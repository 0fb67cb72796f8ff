// Package fixtures builds deterministic, well-known graphs directly as
// cgraph.Graph values, for use in copnumber's and cgraph's property tests
// (spec.md §8 P7: K1, complete graphs, cycles, trees, Petersen).
//
// Adapted from the teacher's builder package (builder/impl_complete.go,
// impl_cycle.go, impl_path.go, impl_wheel.go): same file-local
// method/minimum-nodes constants and early-validation shape, rebuilt
// against cgraph.Graph's dense integer rows instead of core.Graph's
// string-keyed vertices, since there is no directed/weighted/multigraph
// mode to thread through here.
package fixtures

import (
	"errors"
	"fmt"

	"github.com/samuelyvon/copper/cgraph"
)

// ErrTooFewVertices is returned when a topology is asked for fewer
// vertices than it is defined for.
var ErrTooFewVertices = errors.New("fixtures: too few vertices")

const (
	methodComplete = "Complete"
	minComplete    = 1

	methodCycle = "Cycle"
	minCycle    = 3

	methodPath = "Path"
	minPath    = 1

	methodStar = "Star"
	minStar    = 2

	methodWheel = "Wheel"
	minWheel    = 4
)

// Complete builds the complete simple graph K_n (n >= 1).
func Complete(n int) (*cgraph.Graph, error) {
	if n < minComplete {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minComplete, ErrTooFewVertices)
	}
	g := cgraph.New(n, cgraph.WithReflexive())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.EdgeSet(i, j, 1); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}
	return g, nil
}

// Cycle builds the n-vertex simple cycle C_n (n >= 3).
func Cycle(n int) (*cgraph.Graph, error) {
	if n < minCycle {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycle, ErrTooFewVertices)
	}
	g := cgraph.New(n, cgraph.WithReflexive())
	for i := 0; i < n; i++ {
		if _, err := g.EdgeSet(i, (i+1)%n, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
	}
	return g, nil
}

// Path builds the n-vertex simple path P_n (n >= 1); a path is a tree.
func Path(n int) (*cgraph.Graph, error) {
	if n < minPath {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPath, ErrTooFewVertices)
	}
	g := cgraph.New(n, cgraph.WithReflexive())
	for i := 0; i < n-1; i++ {
		if _, err := g.EdgeSet(i, i+1, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}
	}
	return g, nil
}

// Star builds a star with center vertex 0 and n-1 leaves (n >= 2); a star
// is a tree.
func Star(n int) (*cgraph.Graph, error) {
	if n < minStar {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStar, ErrTooFewVertices)
	}
	g := cgraph.New(n, cgraph.WithReflexive())
	for leaf := 1; leaf < n; leaf++ {
		if _, err := g.EdgeSet(0, leaf, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
	}
	return g, nil
}

// Wheel builds the wheel W_n = C_{n-1} + a hub vertex n-1 (n >= 4).
func Wheel(n int) (*cgraph.Graph, error) {
	if n < minWheel {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheel, ErrTooFewVertices)
	}
	rimSize := n - 1
	hub := rimSize
	g := cgraph.New(n, cgraph.WithReflexive())
	for i := 0; i < rimSize; i++ {
		if _, err := g.EdgeSet(i, (i+1)%rimSize, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodWheel, err)
		}
		if _, err := g.EdgeSet(i, hub, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodWheel, err)
		}
	}
	return g, nil
}

// petersenEdges lists the 15 edges of the standard Petersen graph: an outer
// 5-cycle (0..4), an inner 5-cycle connected as a pentagram (5..9), and
// five spokes joining them.
var petersenEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer rim
	{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner pentagram
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
}

// Petersen builds the (Kneser) Petersen graph on 10 vertices, 3-regular,
// with cop number 3 — the canonical example separating c(G) = 2 from
// c(G) = 3 (spec.md §8 P7).
func Petersen() (*cgraph.Graph, error) {
	g := cgraph.New(10, cgraph.WithReflexive())
	for _, e := range petersenEdges {
		if _, err := g.EdgeSet(e[0], e[1], 1); err != nil {
			return nil, fmt.Errorf("Petersen: %w", err)
		}
	}
	return g, nil
}
