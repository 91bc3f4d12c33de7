package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/primecount/errs"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  int64
	}{
		{"limit 0", 0, 0},
		{"limit 1", 1, 0},
		{"limit 2", 2, 1},
		{"limit 3", 3, 2},
		{"limit 10", 10, 4},
		{"limit 100", 100, 25},
		{"limit 1000", 1000, 168},
		{"limit 1000000", 1_000_000, 78498},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountNegativeLimit(t *testing.T) {
	_, err := Count(-1)
	require.ErrorIs(t, err, errs.ErrInvalidLimit)

	_, err = Run(-1_000_000)
	require.ErrorIs(t, err, errs.ErrInvalidLimit)
}

func TestCountIdempotent(t *testing.T) {
	first, err := Count(10_000)
	require.NoError(t, err)

	second, err := Count(10_000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCountMonotonic(t *testing.T) {
	prev := int64(0)
	for limit := int64(0); limit <= 2000; limit += 17 {
		count, err := Count(limit)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, prev, "limit=%d", limit)
		prev = count
	}
}

// trialDivision is an independent primality check used to cross-validate the
// sieve's reconstruction.
func trialDivision(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

func TestPrimesConsistency(t *testing.T) {
	const limit = 5000

	s, err := Run(limit)
	require.NoError(t, err)

	primes := s.Primes()
	require.Equal(t, s.Count(), int64(len(primes)))

	// Every reconstructed value must pass trial division, and every prime up
	// to the limit must appear exactly once.
	seen := make(map[int64]bool, len(primes))
	for _, p := range primes {
		assert.True(t, trialDivision(p), "sieve reported %d as prime", p)
		assert.False(t, seen[p], "duplicate prime %d", p)
		seen[p] = true
	}
	for n := int64(2); n <= limit; n++ {
		if trialDivision(n) {
			assert.True(t, seen[n], "sieve missed prime %d", n)
		}
	}
}

func TestIsPrime(t *testing.T) {
	s, err := Run(100)
	require.NoError(t, err)

	assert.True(t, s.IsPrime(2))
	assert.True(t, s.IsPrime(3))
	assert.True(t, s.IsPrime(97))
	assert.False(t, s.IsPrime(1))
	assert.False(t, s.IsPrime(0))
	assert.False(t, s.IsPrime(4))
	assert.False(t, s.IsPrime(91)) // 7*13
	assert.False(t, s.IsPrime(101), "outside limit")
	assert.False(t, s.IsPrime(-7))
}

func TestPrimesEmptyBelowTwo(t *testing.T) {
	for _, limit := range []int64{0, 1} {
		s, err := Run(limit)
		require.NoError(t, err)
		assert.Empty(t, s.Primes())
		assert.Equal(t, int64(0), s.Count())
	}
}

func TestFlagsInvariant(t *testing.T) {
	s, err := Run(101)
	require.NoError(t, err)

	flags := s.Flags()
	require.Len(t, flags, 51)
	assert.Equal(t, int64(0), flags[0], "index 0 represents 1 and is never prime")

	for i := int64(1); i < int64(len(flags)); i++ {
		want := int64(0)
		if trialDivision(i*2 + 1) {
			want = 1
		}
		assert.Equal(t, want, flags[i], "half-index %d (value %d)", i, i*2+1)
	}
}

func TestNextCandidate(t *testing.T) {
	arr := []int64{0, 1, 0, 0, 1, 0}

	idx, ok := nextCandidate(arr, 0, 5)
	require.True(t, ok)
	assert.Equal(t, int64(1), idx)

	idx, ok = nextCandidate(arr, 2, 5)
	require.True(t, ok)
	assert.Equal(t, int64(4), idx)

	// Nothing set within the inclusive scan bound.
	_, ok = nextCandidate(arr, 2, 3)
	assert.False(t, ok)

	_, ok = nextCandidate(arr, 5, 5)
	assert.False(t, ok)
}

func TestClearMultiples(t *testing.T) {
	arr := make([]int64, 10)
	initFlags(arr)

	// factor 3 starting at 9's half-index clears 4 and every 3rd slot after.
	clearMultiples(arr, 3, 4)

	assert.Equal(t, []int64{1, 1, 1, 1, 0, 1, 1, 0, 1, 1}, arr)
}

func BenchmarkRun(b *testing.B) {
	limits := []struct {
		name  string
		limit int64
	}{
		{"1K", 1000},
		{"100K", 100_000},
		{"1M", 1_000_000},
	}
	for _, tt := range limits {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Run(tt.limit)
			}
		})
	}
}

func BenchmarkCount1M(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Count(1_000_000)
	}
}
