// Package queue implements a bounded FIFO of nonnegative integers with a
// membership BitSet that suppresses duplicate enqueues — the worklist
// frontier for copnumber's fixed-point loop, where the same tensor vertex
// is revisited many times but must queue at most once per cycle.
//
// Grounded on original_source/src/vertice_queue.c (circular buffer over a
// fixed capacity + a membership bitset, push is a no-op when already
// enqueued).
package queue

import "github.com/samuelyvon/copper/bitset"

// DedupQueue is a circular-buffer FIFO of ids in [0, cap) that never holds
// the same id twice at once.
type DedupQueue struct {
	data       []int
	lo, hi, sz int
	member     *bitset.BitSet
}

// New returns an empty DedupQueue over ids in [0, cap).
func New(cap int) *DedupQueue {
	return &DedupQueue{
		data:   make([]int, cap),
		member: bitset.New(uint32(cap)),
	}
}

// Len reports the number of currently enqueued ids.
func (q *DedupQueue) Len() int { return q.sz }

// Push enqueues e, unless e is already present, in which case it is a
// no-op. Returns whether e was actually enqueued.
func (q *DedupQueue) Push(e int) bool {
	if q.member.Set(uint32(e), 1) == 1 {
		return false
	}
	q.data[q.hi] = e
	q.hi = (q.hi + 1) % len(q.data)
	q.sz++
	return true
}

// Pop removes and returns the head of the queue, clearing its membership
// bit. Popping an empty queue is undefined, mirroring the C original.
func (q *DedupQueue) Pop() int {
	e := q.data[q.lo]
	q.lo = (q.lo + 1) % len(q.data)
	q.sz--
	q.member.Set(uint32(e), 0)
	return e
}
