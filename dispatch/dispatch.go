// Package dispatch feeds graph6 lines from a single text source to a pool
// of workers, each of which decodes one graph, runs copnumber.Search on
// it, and reports the result through a Sink.
//
// Grounded on original_source/src/main.c's handle_file/cop_number_worker
// producer-consumer shape. The original uses a pthread mutex + two
// condition variables for a single-slot task handoff; spec.md §9
// explicitly sanctions substituting "a bounded channel of capacity 1...
// the caller must still see back-pressure so the line buffer can be
// reused each iteration." An unbuffered Go channel is exactly that: a
// send blocks until a worker receives (the produce/consume rendezvous),
// and close(lines) is the done broadcast that wakes every worker waiting
// on it — so no explicit mutex/cond pair is needed here at all.
package dispatch

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/samuelyvon/copper/copnumber"
	"github.com/samuelyvon/copper/graph6"
)

// Options configures one dispatch run over a single text source.
type Options struct {
	// Workers is the number of worker goroutines; values < 1 are treated
	// as 1.
	Workers int
	// MaxCop is the K_max passed to copnumber.Search for every graph.
	MaxCop int
	// Aggregate selects histogram mode (PrintAggregate, once, at the
	// end) over streaming mode (PrintResult, once per graph).
	Aggregate bool
}

// Sink receives dispatch's output. Routing every print through this
// interface keeps decision code pure, per spec.md §9's "route all prints
// through a thin output sink" design note; cmd/copper supplies the
// concrete implementation, which writes to standard output.
type Sink interface {
	// PrintResult is called once per successfully decided graph in
	// non-aggregate mode. Calls may arrive from any worker goroutine;
	// dispatch serializes them under its own lock so Sink implementations
	// need not be internally synchronized (spec.md §9 Q3's "dedicated
	// output lock" relaxation).
	PrintResult(k int)
	// PrintAggregate is called exactly once, after every worker has
	// finished, with counts[i] = number of graphs whose cop number was
	// determined to be i+1.
	PrintAggregate(counts []int)
}

// Run reads newline-delimited graph6 lines from r, stripping a leading
// graph6.Header from the very first line if present, and dispatches each
// nonempty line to the worker pool. MalformedGraph6 lines are skipped
// (spec.md §7: isolated to one graph, siblings unaffected). Run blocks
// until every line has been consumed and every worker has finished.
func Run(r io.Reader, opts Options, sink Sink) error {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	lines := make(chan string) // unbuffered: single-slot rendezvous
	var outMu sync.Mutex
	var aggMu sync.Mutex

	var counts []int
	if opts.Aggregate {
		counts = make([]int, opts.MaxCop)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for line := range lines {
				g, err := graph6.Decode(line)
				if err != nil {
					continue // MalformedGraph6: skip this graph, keep going
				}

				k, ok, err := copnumber.Search(g, opts.MaxCop)
				if err != nil {
					continue // AllocationFailure-equivalent: fatal to this decision only
				}

				if opts.Aggregate {
					if ok { // an over-bound result contributes nothing to the histogram
						aggMu.Lock()
						counts[k-1]++
						aggMu.Unlock()
					}
				} else {
					outMu.Lock()
					sink.PrintResult(k)
					outMu.Unlock()
				}
			}
		}()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.HasPrefix(line, graph6.Header) {
				rest := line[len(graph6.Header):]
				if rest == "" {
					continue
				}
				line = rest
			}
		}
		if line == "" {
			continue
		}
		lines <- line // blocks until an idle worker takes it: the back-pressure point
	}
	close(lines)
	wg.Wait()

	if opts.Aggregate {
		sink.PrintAggregate(counts)
	}

	return scanner.Err()
}
