// Package graph6 decodes the graph6 ASCII wire format into a cgraph.Graph.
// The format is reproduced bit-exactly from original_source/src/graph6.c
// and graph6.h, since its byte layout is part of copper's external
// contract (spec.md §4.4/§6).
package graph6

import (
	"errors"
	"fmt"

	"github.com/samuelyvon/copper/cgraph"
)

// Header is the literal prefix some graph6 streams place before their
// first graph.
const Header = ">>graph6<<"

// ErrMalformedGraph6 is returned when a line's payload has fewer bits than
// its declared vertex count demands.
var ErrMalformedGraph6 = errors.New("graph6: malformed payload")

// Decode parses a single graph6-encoded line into a reflexive cgraph.Graph.
func Decode(line string) (*cgraph.Graph, error) {
	s := line
	if len(s) >= len(Header) && s[:len(Header)] == Header {
		s = s[len(Header):]
	}

	raw := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		raw[i] = s[i] - 63
	}

	n, start, err := decodeLength(raw)
	if err != nil {
		return nil, err
	}

	required := (n * (n - 1)) / 2
	payload := raw[start:]
	available := len(payload) * 6
	if available < required {
		return nil, fmt.Errorf("%w: n=%d needs %d edge bits, got %d", ErrMalformedGraph6, n, required, available)
	}

	g := cgraph.New(n, cgraph.WithReflexive())

	cursor := 0
	bitAt := func() int {
		byteIdx := cursor / 6
		rank := 5 - (cursor % 6)
		cursor++
		return int(payload[byteIdx]>>uint(rank)) & 1
	}

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if bitAt() == 1 {
				if _, err := g.EdgeSet(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// decodeLength reads the vertex count n from the head of a -63'd graph6
// payload and reports where the edge-bit payload begins, following the
// three size cases from graph6.c's g6_len.
func decodeLength(raw []byte) (n, start int, err error) {
	if len(raw) < 1 {
		return 0, 0, fmt.Errorf("%w: empty input", ErrMalformedGraph6)
	}

	if raw[0] <= 62 {
		return int(raw[0]), 1, nil
	}

	if len(raw) < 4 {
		return 0, 0, fmt.Errorf("%w: truncated small-n header", ErrMalformedGraph6)
	}
	if raw[1] <= 62 {
		n = (int(raw[1]) << 12) + (int(raw[2]) << 6) + int(raw[3])
		return n, 4, nil
	}

	if len(raw) < 8 {
		return 0, 0, fmt.Errorf("%w: truncated large-n header", ErrMalformedGraph6)
	}
	n = (int(raw[2]) << 30) + (int(raw[3]) << 24) + (int(raw[4]) << 18) +
		(int(raw[5]) << 12) + (int(raw[6]) << 6) + int(raw[7])
	return n, 8, nil
}
