// Package primecount counts primes up to a limit with an odd-only Sieve of
// Eratosthenes, packaged as a CPU micro-benchmark.
//
// The sieve stores one flag per odd number, halving memory against a classic
// sieve, and eliminates multiples of each factor starting at its square. The
// reference workload counts 78498 primes below 1,000,000.
//
// # Basic Usage
//
// Counting primes:
//
//	import "github.com/arloliu/primecount"
//
//	count, err := primecount.Count(1_000_000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Primes found: %d\n", count)
//
// Listing primes or querying individual numbers requires the sieve package
// directly:
//
//	s, _ := sieve.Run(100)
//	for _, p := range s.Primes() {
//	    fmt.Println(p)
//	}
//
// # Package Structure
//
// This package provides thin wrappers around the sieve package for the most
// common use cases. The snapshot package serializes completed sieves into
// compact checksummed blobs, and the bench package times sieve runs across a
// ladder of limits.
package primecount

import "github.com/arloliu/primecount/sieve"

// DefaultLimit is the reference benchmark bound: counting primes up to it
// yields 78498.
const DefaultLimit int64 = 1_000_000

// Count returns the number of primes in [2, limit].
// It returns errs.ErrInvalidLimit when limit is negative.
func Count(limit int64) (int64, error) {
	return sieve.Count(limit)
}

// Primes returns every prime in [2, limit] in ascending order.
// It returns errs.ErrInvalidLimit when limit is negative.
func Primes(limit int64) ([]int64, error) {
	s, err := sieve.Run(limit)
	if err != nil {
		return nil, err
	}

	return s.Primes(), nil
}
