// Package bitmap packs sieve flag buffers into one bit per odd candidate.
//
// The sieve itself works on []int64 flags for branchless counting; this
// package exists only at the snapshot boundary, where an 8x denser
// representation is worth the conversion cost.
package bitmap

import (
	"fmt"
	"math/bits"
)

// Bitmap is a fixed-size bit set addressed by sieve half-index.
// Bit i lives at bits[i/8], position i%8 (LSB first).
type Bitmap struct {
	bits []byte
	size int64
}

// New creates an all-zero bitmap holding size bits.
func New(size int64) *Bitmap {
	return &Bitmap{
		bits: make([]byte, (size+7)/8),
		size: size,
	}
}

// FromFlags packs a sieve flag buffer: every flag equal to 1 becomes a set
// bit at the same index.
func FromFlags(flags []int64) *Bitmap {
	b := New(int64(len(flags)))
	for i, v := range flags {
		if v == 1 {
			b.bits[i>>3] |= 1 << (uint(i) & 7)
		}
	}

	return b
}

// FromBytes wraps previously packed bytes as a bitmap of size bits.
// The byte length must match exactly what Bytes would produce for size.
func FromBytes(data []byte, size int64) (*Bitmap, error) {
	want := (size + 7) / 8
	if int64(len(data)) != want {
		return nil, fmt.Errorf("bitmap length mismatch: got %d bytes, want %d for %d bits", len(data), want, size)
	}

	return &Bitmap{bits: data, size: size}, nil
}

// Size returns the number of addressable bits.
func (b *Bitmap) Size() int64 {
	return b.size
}

// Bytes returns the packed representation. The slice is shared with the
// bitmap, not copied.
func (b *Bitmap) Bytes() []byte {
	return b.bits
}

// IsSet reports whether bit i is set. Out-of-range indices are reported as
// unset rather than panicking, mirroring how the sieve treats values past
// its limit.
func (b *Bitmap) IsSet(i int64) bool {
	if i < 0 || i >= b.size {
		return false
	}

	return b.bits[i>>3]&(1<<(uint(i)&7)) != 0
}

// OnesCount returns the number of set bits.
func (b *Bitmap) OnesCount() int64 {
	var count int64
	for _, w := range b.bits {
		count += int64(bits.OnesCount8(w))
	}

	return count
}
