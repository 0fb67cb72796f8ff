// Command copper computes the cop number of graphs stored in the graph6
// format, one or many at a time, sequentially or across a worker pool.
//
// Grounded on original_source/src/main.c's main/usage/handle_file/
// handle_folder, re-expressed with the flag package the way
// sbl8-sublation/cmd/sublc/main.go parses its own flags (flag.Bool/Int,
// flag.Args, flag.PrintDefaults, os.Exit on usage errors) — no teacher
// package in this pack ships a CLI of its own.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samuelyvon/copper/dispatch"
)

func usage(quick bool) {
	fmt.Fprintln(os.Stderr, "Usage: copper PATH [-h] [-k cop_number] [-w no_workers=1] [-c] [-s] [-a]")
	if quick {
		return
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Copper computes the cop number of graphs stored in the graph6 file")
	fmt.Fprintln(os.Stderr, "format. A graph6 file may hold one or many graphs. Flags:")
	fmt.Fprintln(os.Stderr, "\t-k : the maximum cop number to check; graphs needing more are reported as over-bound.")
	fmt.Fprintln(os.Stderr, "\t-w : the number of worker goroutines to use in parallel.")
	fmt.Fprintln(os.Stderr, "\t-c : time the computation using wall-clock time.")
	fmt.Fprintln(os.Stderr, "\t-s : silent mode, suppress the parameter banner.")
	fmt.Fprintln(os.Stderr, "\t-a : aggregate mode, print a per-file histogram instead of one line per graph. Requires -k.")
}

// stdoutSink is the default dispatch.Sink: plain non-aggregate results go
// one per line, the aggregate histogram is one space-separated line.
type stdoutSink struct{}

func (stdoutSink) PrintResult(k int) {
	fmt.Println(k)
}

func (stdoutSink) PrintAggregate(counts []int) {
	for _, c := range counts {
		fmt.Printf("%d ", c)
	}
	fmt.Println()
}

func run() int {
	help := flag.Bool("h", false, "print this help and exit")
	maxCop := flag.Int("k", -1, "maximum cop number to test (required with -a)")
	workers := flag.Int("w", 1, "number of worker goroutines")
	takeTime := flag.Bool("c", false, "print wall-clock elapsed seconds at the end")
	silent := flag.Bool("s", false, "suppress the parameter banner")
	aggregate := flag.Bool("a", false, "aggregate mode: print a cop-number histogram per file")
	flag.Parse()

	// flag stops at the first non-flag argument, so options written after
	// PATH, as in the usage line, are parsed in a second pass.
	path := flag.Arg(0)
	if flag.NArg() > 1 {
		flag.CommandLine.Parse(flag.Args()[1:])
	}

	start := time.Now()

	if *help {
		usage(false)
		return 1
	}

	if path == "" {
		usage(true)
		return 1
	}

	if !*silent {
		fmt.Println("Samuel Yvon")
		fmt.Println("Cop Number Calculator")
		fmt.Printf("Will use at maximum %d workers.\n", *workers)
		if *aggregate {
			fmt.Println("Aggregating results.")
		}
		if *takeTime {
			fmt.Println("Timing the computations.")
		}
	}

	if *aggregate && *maxCop < 0 {
		fmt.Fprintln(os.Stderr, "The aggregate parameters require a cop number argument. Aborting.")
		return 1
	}

	effectiveMaxCop := *maxCop
	if effectiveMaxCop < 0 {
		// No -k given and not aggregating: fall back to the widest bound a
		// single byte can hold, the same ceiling original_source/src/main.c
		// ends up with when its unset i32 sentinel of -1 is narrowed to u8.
		effectiveMaxCop = 255
	}

	opts := dispatch.Options{
		Workers:   *workers,
		MaxCop:    effectiveMaxCop,
		Aggregate: *aggregate,
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "The supplied file path is incorrect. Failure to start computation.")
		return 1
	}

	sink := stdoutSink{}
	if info.IsDir() {
		if !handleFolder(path, opts, sink) {
			return 1
		}
	} else {
		if !handleFile(path, opts, sink) {
			return 1
		}
	}

	if *takeTime {
		fmt.Printf("Duration: %d second(s)", int(time.Since(start).Round(time.Second).Seconds()))
	}

	return 0
}

// handleFile dispatches a single graph6 file. Any per-file read failure is
// reported and treated as a non-fatal UnreadablePath: the caller should
// continue on to the next file in directory mode.
func handleFile(path string, opts dispatch.Options, sink dispatch.Sink) bool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "copper: cannot read %s: %v\n", path, err)
		return false
	}
	defer f.Close()

	if err := dispatch.Run(f, opts, sink); err != nil {
		fmt.Fprintf(os.Stderr, "copper: %s: %v\n", path, err)
		return false
	}
	return true
}

// handleFolder iterates folderPath's direct entries, skipping "." and "..",
// and dispatches each as a file. It does not recurse into subdirectories.
func handleFolder(folderPath string, opts dispatch.Options, sink dispatch.Sink) bool {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to open the folder. Aborting.")
		return false
	}

	ok := true
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		// Every other entry is attempted as a file, nested directories
		// included: opening a directory succeeds but reading it fails, and
		// handleFile reports that error and moves on. No recursion is
		// performed.
		if opts.Aggregate {
			fmt.Printf("%s ", name)
		} else {
			fmt.Println(name)
		}

		if !handleFile(filepath.Join(folderPath, name), opts, sink) {
			ok = false
		}
	}
	return ok
}

func main() {
	os.Exit(run())
}
