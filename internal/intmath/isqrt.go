// Package intmath provides integer math helpers for the sieve hot path.
package intmath

// Sqrt computes the floor of the square root of n using Newton's method
// (Heron's method), starting from guess.
//
// The iteration decreases monotonically once the guess overshoots and stops
// when the next iterate is no smaller than the current one, at which point
// the current guess is floor(sqrt(n)).
//
// guess must be positive; the sieve passes limit/2, which holds for any
// limit >= 2. Callers handle n < 2 themselves.
func Sqrt(n, guess int64) int64 {
	for {
		next := (guess + n/guess) / 2
		if next >= guess {
			return guess
		}
		guess = next
	}
}
