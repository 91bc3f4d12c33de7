// Package bench times sieve runs across a ladder of limits.
//
// It is the programmatic core of the primecount CLI's bench command: each
// measurement runs the full sieve several times with a fresh buffer per run
// (the sieve never reuses buffers) and reports wall-clock statistics plus
// derived throughput.
package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arloliu/primecount/sieve"
)

// Result holds the timing statistics for one limit.
type Result struct {
	Limit int64         // Inclusive upper bound the sieve was run for
	Count int64         // Primes found (identical across runs)
	Runs  int           // Number of timed runs
	Min   time.Duration // Fastest run
	Max   time.Duration // Slowest run
	Mean  time.Duration // Arithmetic mean across runs
	// CandidatesPerSec is the throughput of the fastest run, measured in
	// odd candidates processed per second ((limit+1)/2 buffer entries).
	CandidatesPerSec float64
}

// Measure times `runs` complete sieve executions for the given limit.
//
// The first run's count is kept and compared against every later run; a
// disagreement would mean hidden state leaked between runs, so it is
// reported as an error rather than silently averaged away.
func Measure(limit int64, runs int) (Result, error) {
	if runs <= 0 {
		return Result{}, fmt.Errorf("runs must be positive, got %d", runs)
	}

	res := Result{Limit: limit, Runs: runs}
	var total time.Duration

	for i := 0; i < runs; i++ {
		start := time.Now()
		s, err := sieve.Run(limit)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, err
		}

		count := s.Count()
		if i == 0 {
			res.Count = count
			res.Min = elapsed
			res.Max = elapsed
		} else {
			if count != res.Count {
				return Result{}, fmt.Errorf("non-deterministic count for limit %d: run %d found %d, run 0 found %d",
					limit, i, count, res.Count)
			}
			if elapsed < res.Min {
				res.Min = elapsed
			}
			if elapsed > res.Max {
				res.Max = elapsed
			}
		}
		total += elapsed
	}

	res.Mean = total / time.Duration(runs)
	if res.Min > 0 {
		candidates := float64((limit + 1) / 2)
		res.CandidatesPerSec = candidates / res.Min.Seconds()
	}

	return res, nil
}

// MeasureAll measures every limit in the ladder, in order.
func MeasureAll(limits []int64, runs int) ([]Result, error) {
	results := make([]Result, 0, len(limits))
	for _, limit := range limits {
		res, err := Measure(limit, runs)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// WriteResults renders results as a fixed-width table.
func WriteResults(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-12s | %-10s | %-5s | %-12s | %-12s | %-12s | %-14s\n",
		"Limit", "Primes", "Runs", "Min", "Mean", "Max", "Candidates/s")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for _, r := range results {
		fmt.Fprintf(w, "%-12d | %-10d | %-5d | %-12s | %-12s | %-12s | %-14.0f\n",
			r.Limit, r.Count, r.Runs, r.Min, r.Mean, r.Max, r.CandidatesPerSec)
	}
}
