// Package copper computes the cop number of finite simple graphs supplied
// in the graph6 encoding.
//
// The cop number c(G) is the least k such that k cops win the
// Cops-and-Robbers pursuit game on G against a robber with perfect
// information and full-speed movement on the same graph. copper decides,
// for a given k, whether c(G) ≤ k using the distance-k dominating strategy
// characterization of Bonato, Chiniforooshan and Prałat (2010), and
// iterates k = 1, 2, … up to a caller-supplied bound to find the exact
// value.
//
// Subpackages:
//
//	bitset/     — bit-packed subset of a fixed universe
//	graph6/     — graph6 wire-format decoder
//	cgraph/     — dense adjacency-by-row graph and its tensor power
//	queue/      — FIFO with duplicate suppression
//	copnumber/  — the fixed-point decision procedure and its k-search
//	dispatch/   — worker pool feeding graph6 lines to copnumber
//
// cmd/copper is the command-line front end.
package copper
