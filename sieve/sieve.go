// Package sieve implements an odd-only Sieve of Eratosthenes for counting
// primes up to a limit.
//
// The sieve stores one flag per odd number in [1, limit], indexed by
// (n-1)/2, so memory is half of a classic sieve and even numbers are never
// touched. The prime 2 is never stored; the counter accounts for it with a
// starting offset of 1.
//
// The hot path deliberately works on a raw []int64 buffer with explicit
// indices. Flags are 0/1 integers rather than bools so the final reduction
// is a branchless sum, which is the shape this micro-benchmark measures.
package sieve

import (
	"fmt"

	"github.com/arloliu/primecount/errs"
	"github.com/arloliu/primecount/internal/intmath"
)

// Sieve holds the completed flag buffer for one run.
//
// After Run returns, flags[i] == 1 if and only if 2*i+1 is prime, for every
// i >= 1. Index 0 represents the number 1 and is always 0. The buffer is
// allocated once per run and never shared or reused across runs.
type Sieve struct {
	limit int64
	flags []int64
}

// Run executes the full sieve for the given inclusive upper bound.
//
// It returns errs.ErrInvalidLimit for a negative limit, before any buffer is
// allocated. Limits below 2 produce an empty sieve whose count is zero.
//
// The elimination loop visits odd factors from 3 up to floor(sqrt(limit)).
// Each factor's multiples are cleared starting at factor², since smaller
// multiples were already cleared by smaller factors. Total work is the
// classic O(limit log log limit).
func Run(limit int64) (*Sieve, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit %d is negative", errs.ErrInvalidLimit, limit)
	}

	size := (limit + 1) / 2
	s := &Sieve{
		limit: limit,
		flags: make([]int64, size),
	}

	// No odd number below 3 is prime and isqrt needs a positive guess,
	// so the buffer stays all-zero for limits below 2.
	if limit < 2 {
		return s, nil
	}

	initFlags(s.flags)
	s.flags[0] = 0 // 1 is not prime

	q := intmath.Sqrt(limit, limit/2)

	// The stride between factors is irregular, so this is an explicit loop
	// rather than a range.
	for factor := int64(3); factor <= q; {
		idx, ok := nextCandidate(s.flags, factor/2, q/2)
		if !ok {
			break
		}

		actual := idx*2 + 1
		clearMultiples(s.flags, actual, actual*actual/2)

		factor = actual + 2
	}

	return s, nil
}

// Count runs the sieve for limit and returns only the prime count.
func Count(limit int64) (int64, error) {
	s, err := Run(limit)
	if err != nil {
		return 0, err
	}

	return s.Count(), nil
}

// Limit returns the inclusive upper bound this sieve was run for.
func (s *Sieve) Limit() int64 {
	return s.limit
}

// Count returns the number of primes in [2, limit].
func (s *Sieve) Count() int64 {
	if s.limit < 2 {
		return 0
	}

	return countFlags(s.flags)
}

// Primes reconstructs the explicit list of primes from the flag buffer,
// in ascending order. The implicit prime 2 leads the list when limit >= 2.
func (s *Sieve) Primes() []int64 {
	if s.limit < 2 {
		return nil
	}

	primes := make([]int64, 0, s.Count())
	primes = append(primes, 2)
	for i := int64(1); i < int64(len(s.flags)); i++ {
		if s.flags[i] == 1 {
			primes = append(primes, i*2+1)
		}
	}

	return primes
}

// IsPrime reports whether n was marked prime by this run.
// It returns false for any n outside [2, limit].
func (s *Sieve) IsPrime(n int64) bool {
	if n < 2 || n > s.limit {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	return s.flags[(n-1)/2] == 1
}

// Flags exposes the raw flag buffer for serialization.
// Callers must treat the returned slice as read-only.
func (s *Sieve) Flags() []int64 {
	return s.flags
}

// initFlags marks every entry as a candidate.
// The range loop lets the compiler drop bounds checks.
func initFlags(arr []int64) {
	for i := range arr {
		arr[i] = 1
	}
}

// nextCandidate scans arr forward from half-index i up to the inclusive
// half-index limit and returns the first candidate index. The boolean result
// distinguishes "not found" from any real index.
func nextCandidate(arr []int64, i, limit int64) (int64, bool) {
	for i <= limit {
		if arr[i] == 1 {
			return i, true
		}
		i++
	}

	return 0, false
}

// clearMultiples marks every factor-th entry as composite, starting at num.
// Hoisting the length into a local helps the compiler elide bounds checks.
func clearMultiples(arr []int64, factor, num int64) {
	size := int64(len(arr))
	for num < size {
		arr[num] = 0
		num += factor
	}
}

// countFlags sums the candidate flags and adds 1 for the prime 2, which the
// odd-only buffer never represents. Adding the flag value directly keeps the
// loop branchless.
func countFlags(arr []int64) int64 {
	var count int64 = 1
	for _, v := range arr {
		count += v
	}

	return count
}
