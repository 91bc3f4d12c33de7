package intmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		name  string
		n     int64
		guess int64
		want  int64
	}{
		{"perfect square small", 4, 2, 2},
		{"perfect square", 100, 50, 10},
		{"one below square", 99, 49, 9},
		{"one above square", 101, 50, 10},
		{"prime", 7, 3, 2},
		{"benchmark limit", 1_000_000, 500_000, 1000},
		{"n equals guess", 2, 1, 1},
		{"large", 999_999_999_999, 499_999_999_999, 999999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sqrt(tt.n, tt.guess))
		})
	}
}

func TestSqrtMatchesFloat(t *testing.T) {
	// Cross-check against math.Sqrt over a dense range.
	for n := int64(2); n <= 10_000; n++ {
		want := int64(math.Sqrt(float64(n)))
		got := Sqrt(n, n/2+1)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func BenchmarkSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Sqrt(1_000_000, 500_000)
	}
}
